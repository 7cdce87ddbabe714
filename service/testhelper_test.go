package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Gthulhu/kanagawa/config"
	"github.com/Gthulhu/kanagawa/cpufreq"
	"github.com/Gthulhu/kanagawa/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testRoot = "/sys/devices/system/cpu/cpufreq"

var testTable = "100 200 300 400 500 600 700 800 900 1000"

func testControl() config.ControlConfig {
	return config.ControlConfig{
		Interval:              10 * time.Millisecond,
		HighLoadThreshold:     40,
		HighLoadMinPercentile: 0.75,
		LowLoadMaxPercentile:  0.50,
		MaxTableEntries:       100,
	}
}

type writeRecord struct {
	path  string
	value string
}

// recordingFs logs every control file write in order.
type recordingFs struct {
	afero.Fs
	mu     sync.Mutex
	writes []writeRecord
}

func (r *recordingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f, err := r.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &recordingFile{File: f, fs: r, path: name}, nil
}

func (r *recordingFs) Writes() []writeRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]writeRecord(nil), r.writes...)
}

func (r *recordingFs) Reset() {
	r.mu.Lock()
	r.writes = nil
	r.mu.Unlock()
}

type recordingFile struct {
	afero.File
	fs   *recordingFs
	path string
}

func (f *recordingFile) WriteString(s string) (int, error) {
	f.fs.mu.Lock()
	f.fs.writes = append(f.fs.writes, writeRecord{path: f.path, value: s})
	f.fs.mu.Unlock()
	return f.File.WriteString(s)
}

func setupPolicy(t *testing.T, fs afero.Fs, id string, table string, min, max uint64) domain.ScalingDomain {
	t.Helper()
	dir := filepath.Join(testRoot, id)
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	files := map[string]string{
		"scaling_min_freq": fmt.Sprintf("%d\n", min),
		"scaling_max_freq": fmt.Sprintf("%d\n", max),
		"cpuinfo_max_freq": "1200000\n",
	}
	if table != "" {
		files["scaling_available_frequencies"] = table + "\n"
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(content), 0o644))
	}
	return domain.ScalingDomain{ID: id, Path: dir}
}

func readFreq(t *testing.T, fs afero.Fs, d domain.ScalingDomain, name string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, filepath.Join(d.Path, name))
	require.NoError(t, err)
	return strings.TrimSpace(string(data))
}

func newTestController(fs afero.Fs) *cpufreq.Sysfs {
	return cpufreq.NewSysfs(fs, cpufreq.Options{Root: testRoot, MaxEntries: 100})
}

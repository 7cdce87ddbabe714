package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Gthulhu/kanagawa/config"
	"github.com/Gthulhu/kanagawa/domain"
	"github.com/Gthulhu/kanagawa/rest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

const cpufreqRoot = "/sys/devices/system/cpu/cpufreq"

func testConfig(t *testing.T) config.EngineConfig {
	procRoot := t.TempDir()
	stat := "cpu  100 0 100 800 0 0 0 0 0 0\ncpu0 100 0 100 800 0 0 0 0 0 0\nintr 0\nctxt 0\nbtime 0\nprocesses 0\nprocs_running 1\nprocs_blocked 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(procRoot, "stat"), []byte(stat), 0o644))
	return config.EngineConfig{
		Logging: config.LoggingConfig{Level: "info"},
		Control: config.ControlConfig{
			Interval:              10 * time.Millisecond,
			HighLoadThreshold:     40,
			HighLoadMinPercentile: 0.75,
			LowLoadMaxPercentile:  0.50,
			MaxTableEntries:       100,
		},
		Sysfs: config.SysfsConfig{
			ProcRoot:    procRoot,
			CPUFreqRoot: cpufreqRoot,
		},
	}
}

func testFs(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	dir := filepath.Join(cpufreqRoot, "policy0")
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	files := map[string]string{
		"scaling_available_frequencies": "100 200 300 400\n",
		"scaling_min_freq":              "100\n",
		"scaling_max_freq":              "400\n",
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(content), 0o644))
	}
	return fs
}

func TestServiceModule(t *testing.T) {
	fs := testFs(t)
	serviceModule, err := ServiceModule(testConfig(t), fs)
	require.NoError(t, err)

	var svc domain.Service
	var handler *rest.Handler
	handlerModule, err := HandlerModule(serviceModule)
	require.NoError(t, err)
	app := fx.New(fx.NopLogger, handlerModule, fx.Populate(&svc, &handler))
	require.NoError(t, app.Err())
	require.NotNil(t, handler)

	report := svc.ApplyProfile(context.Background(), domain.HighLoad)
	require.Len(t, report.Domains, 1)
	data, err := afero.ReadFile(fs, filepath.Join(cpufreqRoot, "policy0", "scaling_min_freq"))
	require.NoError(t, err)
	assert.Equal(t, "400", string(data))

	util, err := svc.MeasureUtilization(context.Background(), time.Millisecond)
	require.NoError(t, err)
	assert.Zero(t, util)
}

func TestServiceModuleInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Control.Interval = 0
	_, err := ServiceModule(cfg, afero.NewMemMapFs())
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestEngineAppStartStop(t *testing.T) {
	app, err := NewEngineApp(testConfig(t), testFs(t))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx))
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, app.Stop(ctx))
}

func TestEngineAppDryRun(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sysfs.DryRun = true
	fs := testFs(t)

	var svc domain.Service
	serviceModule, err := ServiceModule(cfg, fs)
	require.NoError(t, err)
	app := fx.New(fx.NopLogger, serviceModule, fx.Populate(&svc))
	require.NoError(t, app.Err())

	svc.ApplyProfile(context.Background(), domain.LowLoad)
	data, err := afero.ReadFile(fs, filepath.Join(cpufreqRoot, "policy0", "scaling_max_freq"))
	require.NoError(t, err)
	assert.Equal(t, "400\n", string(data))
}

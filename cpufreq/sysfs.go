package cpufreq

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Gthulhu/kanagawa/domain"
	"github.com/Gthulhu/kanagawa/pkg/logger"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	DefaultRoot  = "/sys/devices/system/cpu/cpufreq"
	policyPrefix = "policy"

	availableFrequenciesFile = "scaling_available_frequencies"
	cpuinfoMaxFreqFile       = "cpuinfo_max_freq"
	scalingMinFreqFile       = "scaling_min_freq"
	scalingMaxFreqFile       = "scaling_max_freq"
	scalingCurFreqFile       = "scaling_cur_freq"
	scalingGovernorFile      = "scaling_governor"
	affectedCPUsFile         = "affected_cpus"
)

// Sysfs talks to the cpufreq policy directories under root.
type Sysfs struct {
	fs         afero.Fs
	root       string
	maxEntries int
	dryRun     bool
}

type Options struct {
	Root       string
	MaxEntries int
	DryRun     bool
}

func NewSysfs(fs afero.Fs, opts Options) *Sysfs {
	if opts.Root == "" {
		opts.Root = DefaultRoot
	}
	return &Sysfs{
		fs:         fs,
		root:       opts.Root,
		maxEntries: opts.MaxEntries,
		dryRun:     opts.DryRun,
	}
}

// Domains lists every policyN entry under root in name order.
func (s *Sysfs) Domains(ctx context.Context) ([]domain.ScalingDomain, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", s.root)
	}
	domains := make([]domain.ScalingDomain, 0, len(entries))
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), policyPrefix) {
			continue
		}
		domains = append(domains, domain.ScalingDomain{
			ID:   entry.Name(),
			Path: filepath.Join(s.root, entry.Name()),
		})
	}
	return domains, nil
}

// ReadTable parses scaling_available_frequencies, stopping after maxEntries tokens. A token that
// is not an unsigned integer is kept as domain.Unresolved so callers treat the table as corrupt.
func (s *Sysfs) ReadTable(d domain.ScalingDomain) (domain.FrequencyTable, error) {
	data, err := afero.ReadFile(s.fs, filepath.Join(d.Path, availableFrequenciesFile))
	if err != nil {
		return nil, errors.Wrapf(err, "read frequency table of %s", d.ID)
	}
	fields := strings.Fields(string(data))
	table := make(domain.FrequencyTable, 0, len(fields))
	for _, field := range fields {
		if s.maxEntries > 0 && len(table) >= s.maxEntries {
			break
		}
		freq, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			freq = domain.Unresolved
		}
		table = append(table, freq)
	}
	if len(table) == 0 {
		return nil, errors.Wrapf(domain.ErrUnresolved, "empty frequency table for %s", d.ID)
	}
	return table, nil
}

func (s *Sysfs) ReadFallbackMax(d domain.ScalingDomain) (uint64, error) {
	return s.readUint(filepath.Join(d.Path, cpuinfoMaxFreqFile))
}

func (s *Sysfs) WriteMinFreq(ctx context.Context, d domain.ScalingDomain, khz uint64) error {
	return s.writeUint(ctx, filepath.Join(d.Path, scalingMinFreqFile), khz)
}

func (s *Sysfs) WriteMaxFreq(ctx context.Context, d domain.ScalingDomain, khz uint64) error {
	return s.writeUint(ctx, filepath.Join(d.Path, scalingMaxFreqFile), khz)
}

// Inspect gathers a best-effort view of the domain; missing files leave zero values.
func (s *Sysfs) Inspect(ctx context.Context, d domain.ScalingDomain) domain.DomainState {
	state := domain.DomainState{Domain: d}
	if table, err := s.ReadTable(d); err == nil {
		state.Table = table.Sorted()
	}
	state.FallbackMax, _ = s.ReadFallbackMax(d)
	state.ScalingMin, _ = s.readUint(filepath.Join(d.Path, scalingMinFreqFile))
	state.ScalingMax, _ = s.readUint(filepath.Join(d.Path, scalingMaxFreqFile))
	state.CurrentFreq, _ = s.readUint(filepath.Join(d.Path, scalingCurFreqFile))
	state.Governor, _ = s.readString(filepath.Join(d.Path, scalingGovernorFile))
	state.AffectedCPUs, _ = s.readString(filepath.Join(d.Path, affectedCPUsFile))
	return state
}

func (s *Sysfs) readString(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *Sysfs) readUint(path string) (uint64, error) {
	value, err := s.readString(path)
	if err != nil {
		return 0, errors.Wrapf(err, "read %s", path)
	}
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", path)
	}
	return v, nil
}

// writeUint opens an existing control file and writes the value as decimal text without a
// trailing newline. Control files are never created.
func (s *Sysfs) writeUint(ctx context.Context, path string, value uint64) error {
	text := strconv.FormatUint(value, 10)
	if s.dryRun {
		logger.Logger(ctx).Info().Msgf("DRY RUN: would write %s to %s", text, path)
		return nil
	}
	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	_, err = f.WriteString(text)
	closeErr := f.Close()
	if err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, "close %s", path)
	}
	return nil
}

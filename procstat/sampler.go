package procstat

import (
	"context"
	"math"

	"github.com/Gthulhu/kanagawa/domain"
	"github.com/Gthulhu/kanagawa/pkg/logger"
	"github.com/pkg/errors"
	"github.com/prometheus/procfs"
)

// procfs reports /proc/stat counters in seconds at USER_HZ.
const userHZ = 100

// Sampler reads the aggregate "cpu" line of <procRoot>/stat.
type Sampler struct {
	procRoot string
}

func NewSampler(procRoot string) *Sampler {
	return &Sampler{procRoot: procRoot}
}

// Sample never fails: unreadable counters degrade to the zero snapshot.
func (s *Sampler) Sample(ctx context.Context) domain.CPUSnapshot {
	snapshot, err := s.ReadSnapshot()
	if err != nil {
		logger.Logger(ctx).Debug().Err(err).Msgf("cpu counters unavailable under %s", s.procRoot)
		return domain.CPUSnapshot{}
	}
	return snapshot
}

func (s *Sampler) ReadSnapshot() (domain.CPUSnapshot, error) {
	fs, err := procfs.NewFS(s.procRoot)
	if err != nil {
		return domain.CPUSnapshot{}, errors.Wrapf(err, "open procfs at %s", s.procRoot)
	}
	stat, err := fs.Stat()
	if err != nil {
		return domain.CPUSnapshot{}, errors.Wrap(err, "read stat")
	}
	return snapshotFromCPUStat(stat.CPUTotal), nil
}

func snapshotFromCPUStat(c procfs.CPUStat) domain.CPUSnapshot {
	idle := toTicks(c.Idle) + toTicks(c.Iowait)
	busy := toTicks(c.User) + toTicks(c.Nice) + toTicks(c.System) +
		toTicks(c.IRQ) + toTicks(c.SoftIRQ) + toTicks(c.Steal)
	return domain.CPUSnapshot{
		Idle:  idle,
		Total: idle + busy,
	}
}

func toTicks(seconds float64) uint64 {
	if seconds <= 0 {
		return 0
	}
	return uint64(math.Round(seconds * userHZ))
}

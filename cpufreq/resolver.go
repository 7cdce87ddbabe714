package cpufreq

import (
	"context"

	"github.com/Gthulhu/kanagawa/domain"
	"github.com/Gthulhu/kanagawa/pkg/logger"
)

// Resolve reads the domain's frequency table and picks the entry selected by mode. When the table
// cannot be read, only AbsoluteMax has a fallback: cpuinfo_max_freq, returned as is. Every other
// failure yields domain.Unresolved.
func (s *Sysfs) Resolve(ctx context.Context, d domain.ScalingDomain, mode domain.ResolveMode) uint64 {
	table, err := s.ReadTable(d)
	if err != nil {
		if !mode.IsAbsoluteMax() {
			logger.Logger(ctx).Debug().Err(err).Msgf("cannot resolve %s frequency for %s", mode, d.ID)
			return domain.Unresolved
		}
		fallback, fallbackErr := s.ReadFallbackMax(d)
		if fallbackErr != nil {
			logger.Logger(ctx).Debug().Err(fallbackErr).Msgf("no frequency table or fallback maximum for %s", d.ID)
			return domain.Unresolved
		}
		return fallback
	}
	return table.Pick(mode)
}

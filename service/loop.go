package service

import (
	"context"
	"time"

	"github.com/Gthulhu/kanagawa/domain"
	"github.com/Gthulhu/kanagawa/pkg/logger"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// Run takes the initial sample, then sleeps one interval before every tick. It returns nil once
// ctx is cancelled.
func (svc *Service) Run(ctx context.Context) error {
	prev := svc.sampler.Sample(ctx)
	logger.Logger(ctx).Info().Msgf("Kanagawa Engine started, interval %s, high load above %.1f%%",
		svc.control.Interval, svc.control.HighLoadThreshold)

	for {
		select {
		case <-ctx.Done():
			logger.Logger(ctx).Info().Msg("Kanagawa Engine stopped")
			return nil
		case <-time.After(svc.control.Interval):
		}
		result := svc.Tick(ctx, prev)
		prev = result.Snapshot
	}
}

// Tick samples the counters, classifies the utilization since prev and applies the matching
// profile. An unreadable sample stands in as prev, so the delta is zero and nothing is written.
func (svc *Service) Tick(ctx context.Context, prev domain.CPUSnapshot) domain.TickResult {
	log := logger.Logger(ctx).With().Str("tick_id", xid.New().String()).Logger()
	ctx = log.WithContext(ctx)

	curr := svc.sampler.Sample(ctx)
	if curr.IsZero() {
		log.Debug().Msg("sample unavailable, reusing previous counters")
		curr = prev
	}

	result := domain.TickResult{
		At:          svc.now(),
		Snapshot:    curr,
		Utilization: domain.Utilization(prev, curr),
	}
	result.Profile = svc.Classify(result.Utilization)

	if curr.Total-prev.Total == 0 {
		log.Debug().Msg("no cpu time elapsed, skipping profile application")
	} else {
		result.Report = svc.ApplyProfile(ctx, result.Profile)
		result.Applied = true
		log.Debug().Msgf("utilization %.2f%% -> %s, %d domains applied",
			result.Utilization, result.Profile, result.Report.Applied())
	}

	svc.metricCollector.ObserveTick(result)
	svc.storeTick(result)
	return result
}

// MeasureUtilization reports the busy percentage over window. It fails when either sample is
// unreadable or ctx ends first.
func (svc *Service) MeasureUtilization(ctx context.Context, window time.Duration) (float64, error) {
	first := svc.sampler.Sample(ctx)
	if first.IsZero() {
		return 0, domain.ErrNoSample
	}
	select {
	case <-ctx.Done():
		return 0, errors.Wrap(ctx.Err(), "measure utilization")
	case <-time.After(window):
	}
	second := svc.sampler.Sample(ctx)
	if second.IsZero() {
		return 0, domain.ErrNoSample
	}
	return domain.Utilization(first, second), nil
}

package service

import (
	"context"

	"github.com/Gthulhu/kanagawa/domain"
	"github.com/Gthulhu/kanagawa/pkg/logger"
	"github.com/rs/zerolog"
)

const (
	skipNoTable         = "frequency table unavailable"
	skipUnknownProfile  = "unknown profile"
	skipDomainsListFail = "scaling domains unavailable"
)

// ApplyProfile writes the profile's bounds to every scaling domain. Each domain is handled on its
// own: a domain whose targets cannot be resolved is skipped, and failed writes are counted in the
// report without stopping the pass.
func (svc *Service) ApplyProfile(ctx context.Context, profile domain.Profile) domain.ApplyReport {
	report := domain.ApplyReport{Profile: profile}
	domains, err := svc.controller.Domains(ctx)
	if err != nil {
		logger.Logger(ctx).Debug().Err(err).Msg(skipDomainsListFail)
		return report
	}
	for _, d := range domains {
		result := svc.applyDomain(ctx, d, profile)
		svc.metricCollector.ObserveDomain(result)
		report.Domains = append(report.Domains, result)
	}
	return report
}

// applyDomain orders the two writes so the kernel never sees min above max: under HighLoad the
// ceiling is raised before the floor, under LowLoad the floor is lowered before the ceiling.
func (svc *Service) applyDomain(ctx context.Context, d domain.ScalingDomain, profile domain.Profile) domain.DomainResult {
	result := domain.DomainResult{Domain: d}
	log := logger.Logger(ctx).With().Str("domain", d.ID).Str("profile", profile.String()).Logger()

	if profile != domain.HighLoad && profile != domain.LowLoad {
		result.Skipped = true
		result.SkipReason = skipUnknownProfile
		return result
	}

	absMin := svc.controller.Resolve(ctx, d, domain.AbsoluteMin)
	absMax := svc.controller.Resolve(ctx, d, domain.AbsoluteMax)
	if absMin == domain.Unresolved || absMax == domain.Unresolved {
		return skipDomain(log, result)
	}

	if profile == domain.HighLoad {
		result.MaxFreq = absMax
		result.MinFreq = svc.controller.Resolve(ctx, d, domain.Percentile(svc.control.HighLoadMinPercentile))
	} else {
		result.MinFreq = absMin
		result.MaxFreq = svc.controller.Resolve(ctx, d, domain.Percentile(svc.control.LowLoadMaxPercentile))
	}
	if result.MinFreq == domain.Unresolved || result.MaxFreq == domain.Unresolved {
		return skipDomain(log, result)
	}

	writes := []func() error{
		func() error { return svc.controller.WriteMaxFreq(ctx, d, result.MaxFreq) },
		func() error { return svc.controller.WriteMinFreq(ctx, d, result.MinFreq) },
	}
	if profile == domain.LowLoad {
		writes[0], writes[1] = writes[1], writes[0]
	}
	for _, write := range writes {
		if err := write(); err != nil {
			result.WriteFailures++
			log.Debug().Err(err).Msg("frequency write failed")
		}
	}
	log.Debug().Msgf("bounds applied min=%d max=%d failures=%d", result.MinFreq, result.MaxFreq, result.WriteFailures)
	return result
}

func skipDomain(log zerolog.Logger, result domain.DomainResult) domain.DomainResult {
	log.Debug().Msgf("skip domain: %s", skipNoTable)
	result.Skipped = true
	result.SkipReason = skipNoTable
	result.MinFreq, result.MaxFreq = 0, 0
	return result
}

package service

import (
	"context"
	"sync"
	"time"

	"github.com/Gthulhu/kanagawa/config"
	"github.com/Gthulhu/kanagawa/domain"
	"github.com/Gthulhu/kanagawa/pkg/logger"
	"github.com/Gthulhu/kanagawa/pkg/util"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type Params struct {
	fx.In
	Control    config.ControlConfig
	Sampler    domain.UtilizationSampler
	Controller domain.FrequencyController
	Registry   *prometheus.Registry `optional:"true"`
}

func NewService(params Params) (domain.Service, error) {
	svc := newService(params.Control, params.Sampler, params.Controller)
	if params.Registry != nil {
		if err := params.Registry.Register(svc.metricCollector); err != nil {
			return nil, errors.Wrap(err, "register metric collector")
		}
	}
	return svc, nil
}

func newService(control config.ControlConfig, sampler domain.UtilizationSampler, controller domain.FrequencyController) *Service {
	return &Service{
		control:         control,
		sampler:         sampler,
		controller:      controller,
		metricCollector: NewMetricCollector(util.GetMachineID()),
		now:             time.Now,
	}
}

type Service struct {
	control         config.ControlConfig
	sampler         domain.UtilizationSampler
	controller      domain.FrequencyController
	metricCollector *MetricCollector
	now             func() time.Time

	tickMu   sync.RWMutex
	lastTick domain.TickResult
	hasTick  bool
}

func (svc *Service) Classify(utilization float64) domain.Profile {
	return domain.ClassifyLoad(utilization, svc.control.HighLoadThreshold)
}

func (svc *Service) LastTick() (domain.TickResult, bool) {
	svc.tickMu.RLock()
	defer svc.tickMu.RUnlock()
	return svc.lastTick, svc.hasTick
}

func (svc *Service) storeTick(result domain.TickResult) {
	svc.tickMu.Lock()
	svc.lastTick = result
	svc.hasTick = true
	svc.tickMu.Unlock()
}

// DomainStates inspects every scaling domain and resolves the targets each profile would write.
func (svc *Service) DomainStates(ctx context.Context) ([]domain.DomainState, error) {
	domains, err := svc.controller.Domains(ctx)
	if err != nil {
		return nil, err
	}
	if len(domains) == 0 {
		return nil, domain.ErrNoDomains
	}
	states := make([]domain.DomainState, 0, len(domains))
	for _, d := range domains {
		state := svc.controller.Inspect(ctx, d)
		state.AbsoluteMin = svc.controller.Resolve(ctx, d, domain.AbsoluteMin)
		state.AbsoluteMax = svc.controller.Resolve(ctx, d, domain.AbsoluteMax)
		state.HighLoadMin = svc.controller.Resolve(ctx, d, domain.Percentile(svc.control.HighLoadMinPercentile))
		state.LowLoadMax = svc.controller.Resolve(ctx, d, domain.Percentile(svc.control.LowLoadMaxPercentile))
		states = append(states, state)
	}
	logger.Logger(ctx).Debug().Msgf("inspected %d scaling domains", len(states))
	return states, nil
}

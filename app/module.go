package app

import (
	"github.com/Gthulhu/kanagawa/config"
	"github.com/Gthulhu/kanagawa/cpufreq"
	"github.com/Gthulhu/kanagawa/domain"
	"github.com/Gthulhu/kanagawa/procstat"
	"github.com/Gthulhu/kanagawa/rest"
	"github.com/Gthulhu/kanagawa/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/afero"
	"go.uber.org/fx"
)

func ConfigModule(cfg config.EngineConfig) (fx.Option, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return fx.Options(
		fx.Provide(func() config.EngineConfig {
			return cfg
		}),
		fx.Provide(func(engineCfg config.EngineConfig) config.ServerConfig {
			return engineCfg.Server
		}),
		fx.Provide(func(engineCfg config.EngineConfig) config.ControlConfig {
			return engineCfg.Control
		}),
		fx.Provide(func(engineCfg config.EngineConfig) config.SysfsConfig {
			return engineCfg.Sysfs
		}),
	), nil
}

// InfraModule provides the /proc sampler, the cpufreq controller and the metrics registry
func InfraModule(fs afero.Fs) fx.Option {
	return fx.Options(
		fx.Provide(func() afero.Fs {
			return fs
		}),
		fx.Provide(NewRegistry),
		fx.Provide(func(sysfsCfg config.SysfsConfig) domain.UtilizationSampler {
			return procstat.NewSampler(sysfsCfg.ProcRoot)
		}),
		fx.Provide(func(fs afero.Fs, sysfsCfg config.SysfsConfig, control config.ControlConfig) domain.FrequencyController {
			return cpufreq.NewSysfs(fs, cpufreq.Options{
				Root:       sysfsCfg.CPUFreqRoot,
				MaxEntries: control.MaxTableEntries,
				DryRun:     sysfsCfg.DryRun,
			})
		}),
	)
}

func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// ServiceModule creates an Fx module that provides the service layer, return domain.Service
func ServiceModule(cfg config.EngineConfig, fs afero.Fs) (fx.Option, error) {
	configModule, err := ConfigModule(cfg)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		configModule,
		InfraModule(fs),
		fx.Provide(service.NewService),
	), nil
}

// HandlerModule creates an Fx module that provides the REST handler, return *rest.Handler
func HandlerModule(serviceModule fx.Option) (fx.Option, error) {
	return fx.Options(
		serviceModule,
		fx.Provide(rest.NewHandler),
	), nil
}

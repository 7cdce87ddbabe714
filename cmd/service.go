package cmd

import (
	"github.com/Gthulhu/kanagawa/app"
	"github.com/Gthulhu/kanagawa/config"
	"github.com/Gthulhu/kanagawa/domain"
	"github.com/spf13/afero"
	"go.uber.org/fx"
)

// newFs is replaced in tests.
var newFs = afero.NewOsFs

// buildService assembles the service layer without starting the control loop.
func buildService(cfg config.EngineConfig) (domain.Service, error) {
	serviceModule, err := app.ServiceModule(cfg, newFs())
	if err != nil {
		return nil, err
	}
	var svc domain.Service
	fxApp := fx.New(fx.NopLogger, serviceModule, fx.Populate(&svc))
	if err := fxApp.Err(); err != nil {
		return nil, err
	}
	return svc, nil
}

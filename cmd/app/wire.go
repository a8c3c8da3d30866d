//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/tenki/internal/bootstrap"
	"github.com/yanqian/tenki/internal/domain/weather"
	"github.com/yanqian/tenki/internal/domain/widget"
	"github.com/yanqian/tenki/internal/infra/config"
	"github.com/yanqian/tenki/internal/infra/openmeteo"
	httpiface "github.com/yanqian/tenki/internal/interface/http"
	"github.com/yanqian/tenki/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideWeatherConfig,
		provideWidgetConfig,
		provideForecastClient,
		weather.NewService,
		widget.NewService,
		wire.Bind(new(weather.ForecastClient), new(*openmeteo.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

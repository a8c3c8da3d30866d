package main

import (
	"github.com/yanqian/tenki/internal/domain/weather"
	"github.com/yanqian/tenki/internal/domain/widget"
	"github.com/yanqian/tenki/internal/infra/config"
	"github.com/yanqian/tenki/internal/infra/openmeteo"
)

func provideWeatherConfig(cfg *config.Config) weather.Config {
	return weather.Config{
		Locations:       cfg.Widget.Locations,
		DefaultLocation: cfg.Widget.DefaultLocation,
	}
}

func provideWidgetConfig(cfg *config.Config) widget.Config {
	return widget.Config{
		IdleTTL: cfg.Widget.IdleTTL,
	}
}

func provideForecastClient(cfg *config.Config) *openmeteo.Client {
	return openmeteo.NewClient(openmeteo.Options{
		BaseURL:  cfg.Forecast.BaseURL,
		Timezone: cfg.Forecast.Timezone,
		Daily:    cfg.Forecast.Daily,
		Timeout:  cfg.Forecast.Timeout,
	})
}

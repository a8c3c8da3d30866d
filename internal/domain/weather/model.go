package weather

import "time"

// Location is one selectable place in the widget.
type Location struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// CurrentWeather is the "now" block of a forecast response.
type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weatherCode"`
}

// DailyForecastEntry is one day of the weekly forecast.
type DailyForecastEntry struct {
	Date        string  `json:"date"`
	WeatherCode int     `json:"weatherCode"`
	TempMax     float64 `json:"tempMax"`
	TempMin     float64 `json:"tempMin"`
}

// Report is the result of a single forecast fetch.
type Report struct {
	Location  Location
	Current   CurrentWeather
	Daily     []DailyForecastEntry
	Source    string
	FetchedAt time.Time
}

// Request captures the payload accepted by the weather service.
type Request struct {
	Location string `json:"location" form:"location"`
}

// Response is serialized back to API consumers.
type Response struct {
	Location  Location    `json:"location"`
	Current   CurrentView `json:"current"`
	Daily     []DailyView `json:"daily"`
	Source    string      `json:"source"`
	FetchedAt string      `json:"fetchedAt"`
}

// CurrentView is CurrentWeather plus its translated description.
type CurrentView struct {
	CurrentWeather
	Description string `json:"description"`
}

// DailyView is DailyForecastEntry plus its icon.
type DailyView struct {
	DailyForecastEntry
	Icon string `json:"icon"`
}

// Config wires runtime dependencies for the weather domain.
type Config struct {
	Locations       []Location
	DefaultLocation string
}

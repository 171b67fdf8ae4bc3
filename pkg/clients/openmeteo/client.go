package openmeteo

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/fishing-tracker/internal/config"
)

const forecastCacheTTL = 10 * time.Minute

// Client exposes the Open-Meteo operations used by the application.
type Client interface {
	Forecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error)
	GeocodeCity(ctx context.Context, name string) (*Place, error)
}

// APIClient is a resty-backed implementation of Client with a short-lived
// in-process forecast cache.
type APIClient struct {
	forecastClient *resty.Client
	geocodeClient  *resty.Client

	mu    sync.Mutex
	cache map[string]cachedForecast
	now   func() time.Time
}

type cachedForecast struct {
	expiresAt time.Time
	data      *ForecastResponse
}

// NewClient builds an Open-Meteo API client using the provided configuration values.
func NewClient(cfg config.WeatherConfig) *APIClient {
	newResty := func(baseURL string) *resty.Client {
		c := resty.New()
		c.SetBaseURL(strings.TrimSuffix(baseURL, "/")).
			SetHeader("Accept", "application/json").
			SetTimeout(15 * time.Second)
		return c
	}

	return &APIClient{
		forecastClient: newResty(cfg.ForecastBaseURL),
		geocodeClient:  newResty(cfg.GeocodeBaseURL),
		cache:          make(map[string]cachedForecast),
		now:            time.Now,
	}
}

// ForecastResponse mirrors the subset of the Open-Meteo forecast payload the
// app consumes.
type ForecastResponse struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Timezone  string         `json:"timezone"`
	Current   CurrentWeather `json:"current"`
	Hourly    HourlyForecast `json:"hourly"`
}

// CurrentWeather is the current-conditions block.
type CurrentWeather struct {
	Time          string  `json:"time"`
	Temperature2M float64 `json:"temperature_2m"`
	WeatherCode   int     `json:"weather_code"`
	WindSpeed10M  float64 `json:"wind_speed_10m"`
}

// HourlyForecast carries the hourly series, index-aligned on Time.
type HourlyForecast struct {
	Time                     []string  `json:"time"`
	Temperature2M            []float64 `json:"temperature_2m"`
	PrecipitationProbability []int     `json:"precipitation_probability"`
	WeatherCode              []int     `json:"weather_code"`
	WindSpeed10M             []float64 `json:"wind_speed_10m"`
}

// Place is a resolved geocoding result.
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Admin1    string  `json:"admin1"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// Forecast fetches current plus hourly conditions for a coordinate, serving
// repeated lookups for the same point from cache for ten minutes.
func (c *APIClient) Forecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error) {
	key := fmt.Sprintf("%.4f,%.4f", lat, lon)

	c.mu.Lock()
	if cached, ok := c.cache[key]; ok && cached.expiresAt.After(c.now()) {
		c.mu.Unlock()
		return cached.data, nil
	}
	c.mu.Unlock()

	result := new(ForecastResponse)
	resp, err := c.forecastClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(lat, 'f', -1, 64),
			"longitude": strconv.FormatFloat(lon, 'f', -1, 64),
			"hourly":    "temperature_2m,precipitation_probability,weather_code,wind_speed_10m",
			"current":   "temperature_2m,weather_code,wind_speed_10m",
			"timezone":  "auto",
		}).
		SetResult(result).
		Get("/v1/forecast")
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("open-meteo forecast error: status=%d", resp.StatusCode())
	}

	c.mu.Lock()
	c.cache[key] = cachedForecast{expiresAt: c.now().Add(forecastCacheTTL), data: result}
	c.mu.Unlock()

	return result, nil
}

// GeocodeCity resolves a city name to its best-matching coordinate.
func (c *APIClient) GeocodeCity(ctx context.Context, name string) (*Place, error) {
	result := new(geocodeResponse)
	resp, err := c.geocodeClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"name":     name,
			"count":    "1",
			"language": "en",
		}).
		SetResult(result).
		Get("/v1/search")
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", name, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("open-meteo geocoding error: status=%d", resp.StatusCode())
	}
	if len(result.Results) == 0 {
		return nil, fmt.Errorf("location %q not found", name)
	}

	r := result.Results[0]
	label := r.Name
	if r.Admin1 != "" {
		label += ", " + r.Admin1
	}
	if r.Country != "" {
		label += ", " + r.Country
	}

	return &Place{Name: label, Lat: r.Latitude, Lon: r.Longitude}, nil
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/fishing-tracker/pkg/clients/openmeteo"
)

// WeatherHandler proxies forecast and geocoding lookups for the catch form.
type WeatherHandler struct {
	client openmeteo.Client
	logger *zap.Logger
}

// NewWeatherHandler constructs the HTTP handler adapter.
func NewWeatherHandler(client openmeteo.Client, logger *zap.Logger) *WeatherHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeatherHandler{client: client, logger: logger}
}

// Forecast returns current plus hourly conditions for a coordinate.
func (h *WeatherHandler) Forecast(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon are required numeric parameters"})
		return
	}

	forecast, err := h.client.Forecast(c.Request.Context(), lat, lon)
	if err != nil {
		h.logger.Error("forecast lookup failed", zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to fetch forecast"})
		return
	}

	c.JSON(http.StatusOK, forecast)
}

// Geocode resolves a city name to coordinates.
func (h *WeatherHandler) Geocode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	place, err := h.client.GeocodeCity(c.Request.Context(), query)
	if err != nil {
		h.logger.Warn("geocode lookup failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}

	c.JSON(http.StatusOK, place)
}

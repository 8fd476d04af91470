package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shreyaprsd/Internship-WeatherApp/internal/dispatch"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/weather"
)

// FetchWeatherResponse identifies a started fetch
type FetchWeatherResponse struct {
	FetchID string `json:"fetchId" example:"5f0c7a52-2a4e-4f5e-9a55-b0b6c1f0d3a1"`
}

// handleFetchWeather godoc
// @Summary Fetch current weather
// @Description Starts a weatherapi.com request for the last known coordinate. The result is applied asynchronously; poll GET /weather.
// @Tags weather
// @Produce json
// @Success 202 {object} FetchWeatherResponse
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /weather/fetch [post]
func (app *App) handleFetchWeather(c *gin.Context) {
	id, err := app.weatherView.Fetch()
	if err != nil {
		if errors.Is(err, weather.ErrLocationUnavailable) {
			c.JSON(http.StatusConflict, gin.H{"error": weather.Message(err)})
			return
		}
		if errors.Is(err, dispatch.ErrStopped) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "shutting down"})
			return
		}

		app.logger.Error("failed to start weather fetch", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start weather fetch"})
		return
	}

	c.JSON(http.StatusAccepted, FetchWeatherResponse{FetchID: id})
}

// handleGetWeather godoc
// @Summary Get weather state
// @Description Last applied weather report, the error of the last failed fetch and the number of fetches in flight
// @Tags weather
// @Produce json
// @Success 200 {object} views.WeatherState
// @Router /weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	c.JSON(http.StatusOK, app.weatherView.State())
}

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleCheckLocation godoc
// @Summary Request the device location
// @Description Prompts for location permission when undecided, otherwise requests a one-shot location. The result arrives asynchronously; poll GET /location.
// @Tags location
// @Produce json
// @Success 202 {object} views.LocationState
// @Router /location/check [post]
func (app *App) handleCheckLocation(c *gin.Context) {
	app.locationView.GetLocation()
	c.JSON(http.StatusAccepted, app.locationView.State())
}

// handleGetLocation godoc
// @Summary Get location state
// @Description Authorization state, last known coordinate and its timezone
// @Tags location
// @Produce json
// @Success 200 {object} views.LocationState
// @Router /location [get]
func (app *App) handleGetLocation(c *gin.Context) {
	c.JSON(http.StatusOK, app.locationView.State())
}

package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shreyaprsd/Internship-WeatherApp/internal/location"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/types"
)

// SetAuthorizationInput changes the simulated location permission
type SetAuthorizationInput struct {
	Status string `json:"status" binding:"required" example:"authorizedWhenInUse"` // notDetermined, restricted, denied, authorizedWhenInUse, authorizedAlways
}

// SetPositionInput moves the simulated device
type SetPositionInput struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90" example:"12.9716"`    // Latitude in decimal degrees
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180" example:"77.5946"` // Longitude in decimal degrees
}

// handleSetAuthorization godoc
// @Summary Change location permission
// @Description Simulates the user changing the location permission in the system settings
// @Tags platform
// @Accept json
// @Produce json
// @Param input body SetAuthorizationInput true "New authorization state"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /platform/authorization [put]
func (app *App) handleSetAuthorization(c *gin.Context) {
	var input SetAuthorizationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := location.ParseAuthorizationState(input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app.platform.SetAuthorization(state)
	c.Status(http.StatusNoContent)
}

// handleSetPosition godoc
// @Summary Move the device
// @Description Sets the coordinate reported by subsequent location requests
// @Tags platform
// @Accept json
// @Produce json
// @Param input body SetPositionInput true "New position"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /platform/position [put]
func (app *App) handleSetPosition(c *gin.Context) {
	var input SetPositionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := app.platform.MoveTo(types.NewCoords(*input.Latitude, *input.Longitude)); err != nil {
		// Check if it's a validation error from business layer
		if errors.Is(err, types.ErrInvalidLatitude) || errors.Is(err, types.ErrInvalidLongitude) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("failed to move device", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to move device"})
		return
	}

	c.Status(http.StatusNoContent)
}

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Location endpoints
	app.router.POST("/location/check", app.handleCheckLocation)
	app.router.GET("/location", app.handleGetLocation)

	// Weather endpoints
	app.router.POST("/weather/fetch", app.handleFetchWeather)
	app.router.GET("/weather", app.handleGetWeather)

	// Simulated device controls
	platform := app.router.Group("/platform")
	platform.PUT("/authorization", app.handleSetAuthorization)
	platform.PUT("/position", app.handleSetPosition)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}

package routes

import (
	"github.com/labstack/echo/v4"

	"materieelbeheer/internal/controllers"
)

func runUsageRouter(g *echo.Group, ctrl *controllers.UsageController) {
	g.POST("/usages", ctrl.StartUsage)
	g.POST("/usages/:id/stop", ctrl.StopUsage)
	g.PUT("/usages/:id/werf", ctrl.AssignToWerf)
	g.GET("/usages/active", ctrl.GetActiveUsages)
}

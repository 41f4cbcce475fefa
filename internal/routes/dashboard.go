package routes

import (
	"github.com/labstack/echo/v4"

	"materieelbeheer/internal/controllers"
)

func runDashboardRouter(g *echo.Group, ctrl *controllers.DashboardController) {
	g.GET("/dashboard/counts", ctrl.GetCounts)
}

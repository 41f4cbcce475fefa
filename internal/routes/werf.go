package routes

import (
	"github.com/labstack/echo/v4"

	"materieelbeheer/internal/controllers"
)

func runWerfRouter(g *echo.Group, ctrl *controllers.WerfController) {
	g.GET("/werven", ctrl.GetWerven)
	g.GET("/werven/:id", ctrl.FindWerf)
	g.POST("/werven", ctrl.CreateWerf)
	g.PUT("/werven/:id", ctrl.UpdateWerf)
	g.DELETE("/werven/:id", ctrl.DeleteWerf)
}

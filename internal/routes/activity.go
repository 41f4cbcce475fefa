package routes

import (
	"github.com/labstack/echo/v4"

	"materieelbeheer/internal/controllers"
)

func runActivityRouter(g *echo.Group, ctrl *controllers.ActivityController) {
	g.GET("/activities", ctrl.GetActivities)
	g.GET("/activities/users", ctrl.GetUniqueUsers)
}

package routes

import (
	"github.com/labstack/echo/v4"

	"materieelbeheer/internal/controllers"
)

func runMaterialTypeRouter(g *echo.Group, ctrl *controllers.MaterialTypeController) {
	g.GET("/material-types", ctrl.GetMaterialTypes)
	g.GET("/material-types/:id", ctrl.FindMaterialType)
	g.POST("/material-types", ctrl.CreateMaterialType)
	g.PUT("/material-types/:id", ctrl.UpdateMaterialType)
	g.DELETE("/material-types/:id", ctrl.DeleteMaterialType)
}

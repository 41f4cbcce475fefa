package routes

import (
	"github.com/labstack/echo/v4"

	"materieelbeheer/internal/controllers"
)

func runUserRouter(g *echo.Group, ctrl *controllers.UserController) {
	g.GET("/users", ctrl.GetUsers)
	g.GET("/users/:id", ctrl.FindUser)
	g.POST("/users", ctrl.CreateUser)
	g.PUT("/users/:id", ctrl.UpdateUser)
	g.DELETE("/users/:id", ctrl.DeleteUser)
}

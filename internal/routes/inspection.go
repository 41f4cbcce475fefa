package routes

import (
	"github.com/labstack/echo/v4"

	"materieelbeheer/internal/controllers"
)

func runInspectionRouter(g *echo.Group, ctrl *controllers.InspectionController) {
	g.POST("/keuringen", ctrl.CreateInspection)
	g.GET("/keuringen", ctrl.GetAll)
	g.GET("/keuringen/prioriteit", ctrl.GetPriorityList)
	g.GET("/keuringen/prioriteit/tellers", ctrl.GetPriorityCounts)
	g.POST("/keuringen/reconcile", ctrl.Reconcile)
	g.GET("/keuringen/export", ctrl.Export)
	g.POST("/keuringen/:id/certificaat", ctrl.UploadCertificate)
}

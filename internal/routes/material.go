package routes

import (
	"github.com/labstack/echo/v4"

	"materieelbeheer/internal/controllers"
)

func runMaterialRouter(
	g *echo.Group,
	materialCtrl *controllers.MaterialController,
	usageCtrl *controllers.UsageController,
	inspectionCtrl *controllers.InspectionController,
	documentCtrl *controllers.DocumentController,
) {
	g.GET("/materials", materialCtrl.GetMaterials)
	g.GET("/materials/:id", materialCtrl.FindMaterial)
	g.POST("/materials", materialCtrl.CreateMaterial)
	g.PUT("/materials/:id", materialCtrl.UpdateMaterial)
	g.DELETE("/materials/:id", materialCtrl.DeleteMaterial)

	// Afgeleide toestand en historiek van één materiaal.
	g.GET("/materials/:id/status", materialCtrl.GetMaterialStatus)
	g.GET("/materials/:id/usages", usageCtrl.GetUsagesByMaterial)
	g.GET("/materials/:id/keuringen", inspectionCtrl.GetByMaterial)

	g.GET("/materials/:id/documents", documentCtrl.GetByMaterial)
	g.POST("/materials/:id/documents", documentCtrl.UploadDocument)
	g.DELETE("/materials/:id/documents/:documentId", documentCtrl.DeleteDocument)
}

package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"materieelbeheer/internal/dto"
	"materieelbeheer/internal/services"
	"materieelbeheer/pkg/utils"
)

type MaterialController struct {
	materialService  services.MaterialServiceInterface
	lifecycleService services.LifecycleServiceInterface
	logger           *zap.Logger
}

func NewMaterialController(
	materialService services.MaterialServiceInterface,
	lifecycleService services.LifecycleServiceInterface,
	logger *zap.Logger,
) *MaterialController {
	return &MaterialController{
		materialService:  materialService,
		lifecycleService: lifecycleService,
		logger:           logger,
	}
}

func (ctrl *MaterialController) GetMaterials(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())

	materials, total, err := ctrl.materialService.GetMaterials(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, materials, "Materieel opgehaald", http.StatusOK, total)
}

func (ctrl *MaterialController) FindMaterial(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	material, err := ctrl.materialService.FindMaterial(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, material, "Materieel gevonden", http.StatusOK)
}

// GetMaterialStatus geeft de live opgeloste keuringstatus, het actuele
// gebruik en het risico van één materiaal.
func (ctrl *MaterialController) GetMaterialStatus(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	status, err := ctrl.lifecycleService.MaterialStatus(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, status, "Status opgehaald", http.StatusOK)
}

func (ctrl *MaterialController) CreateMaterial(c echo.Context) error {
	var payload dto.CreateMaterialDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	material, err := ctrl.materialService.CreateMaterial(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, material, "Materieel aangemaakt", http.StatusCreated)
}

func (ctrl *MaterialController) UpdateMaterial(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateMaterialDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	material, err := ctrl.materialService.UpdateMaterial(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, material, "Materieel bijgewerkt", http.StatusOK)
}

func (ctrl *MaterialController) DeleteMaterial(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.materialService.DeleteMaterial(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Materieel verwijderd", http.StatusOK)
}

package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"materieelbeheer/internal/dto"
	"materieelbeheer/internal/services"
	"materieelbeheer/pkg/utils"
)

type MaterialTypeController struct {
	typeService services.MaterialTypeServiceInterface
	logger      *zap.Logger
}

func NewMaterialTypeController(typeService services.MaterialTypeServiceInterface, logger *zap.Logger) *MaterialTypeController {
	return &MaterialTypeController{typeService: typeService, logger: logger}
}

func (ctrl *MaterialTypeController) GetMaterialTypes(c echo.Context) error {
	list, err := ctrl.typeService.GetMaterialTypes(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, list, "Materiaaltypes opgehaald", http.StatusOK)
}

func (ctrl *MaterialTypeController) FindMaterialType(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	mt, err := ctrl.typeService.FindMaterialType(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, mt, "Materiaaltype gevonden", http.StatusOK)
}

func (ctrl *MaterialTypeController) CreateMaterialType(c echo.Context) error {
	var payload dto.CreateMaterialTypeDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	mt, err := ctrl.typeService.CreateMaterialType(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, mt, "Materiaaltype aangemaakt", http.StatusCreated)
}

func (ctrl *MaterialTypeController) UpdateMaterialType(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateMaterialTypeDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	mt, err := ctrl.typeService.UpdateMaterialType(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, mt, "Materiaaltype bijgewerkt", http.StatusOK)
}

func (ctrl *MaterialTypeController) DeleteMaterialType(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.typeService.DeleteMaterialType(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Materiaaltype verwijderd", http.StatusOK)
}

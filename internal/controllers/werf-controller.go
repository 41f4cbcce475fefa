package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"materieelbeheer/internal/dto"
	"materieelbeheer/internal/services"
	"materieelbeheer/pkg/utils"
)

type WerfController struct {
	werfService services.WerfServiceInterface
	logger      *zap.Logger
}

func NewWerfController(werfService services.WerfServiceInterface, logger *zap.Logger) *WerfController {
	return &WerfController{werfService: werfService, logger: logger}
}

func (ctrl *WerfController) GetWerven(c echo.Context) error {
	werven, err := ctrl.werfService.GetWerven(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, werven, "Werven opgehaald", http.StatusOK)
}

func (ctrl *WerfController) FindWerf(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	werf, err := ctrl.werfService.FindWerf(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, werf, "Werf gevonden", http.StatusOK)
}

func (ctrl *WerfController) CreateWerf(c echo.Context) error {
	var payload dto.CreateWerfDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	werf, err := ctrl.werfService.CreateWerf(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, werf, "Werf aangemaakt", http.StatusCreated)
}

func (ctrl *WerfController) UpdateWerf(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateWerfDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	werf, err := ctrl.werfService.UpdateWerf(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, werf, "Werf bijgewerkt", http.StatusOK)
}

func (ctrl *WerfController) DeleteWerf(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.werfService.DeleteWerf(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Werf verwijderd", http.StatusOK)
}

package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"materieelbeheer/internal/dto"
	"materieelbeheer/internal/services"
	"materieelbeheer/pkg/middleware"
	"materieelbeheer/pkg/utils"
)

type UsageController struct {
	usageService services.UsageServiceInterface
	logger       *zap.Logger
}

func NewUsageController(usageService services.UsageServiceInterface, logger *zap.Logger) *UsageController {
	return &UsageController{usageService: usageService, logger: logger}
}

// StartUsage checkt materieel uit voor de ingelogde gebruiker.
func (ctrl *UsageController) StartUsage(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.StartUsageDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	usage, err := ctrl.usageService.StartUsage(c.Request().Context(), userID, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, usage, "Materieel uitgecheckt", http.StatusCreated)
}

func (ctrl *UsageController) StopUsage(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	usageID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.usageService.StopUsage(c.Request().Context(), userID, usageID); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Materieel ingecheckt", http.StatusOK)
}

func (ctrl *UsageController) AssignToWerf(c echo.Context) error {
	usageID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.AssignUsageToWerfDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.usageService.AssignToWerf(c.Request().Context(), usageID, payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Uitlening aan werf gekoppeld", http.StatusOK)
}

func (ctrl *UsageController) GetActiveUsages(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	usages, err := ctrl.usageService.GetActiveUsages(c.Request().Context(), userID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, usages, "Actieve uitleningen opgehaald", http.StatusOK)
}

func (ctrl *UsageController) GetUsagesByMaterial(c echo.Context) error {
	materialID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	usages, err := ctrl.usageService.GetUsagesByMaterial(c.Request().Context(), materialID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, usages, "Uitleenlogboek opgehaald", http.StatusOK)
}

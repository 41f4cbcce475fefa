package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"materieelbeheer/internal/repositories"
	"materieelbeheer/internal/services"
	"materieelbeheer/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
	logger          *zap.Logger
}

func NewActivityController(activityService services.ActivityServiceInterface, logger *zap.Logger) *ActivityController {
	return &ActivityController{activityService: activityService, logger: logger}
}

// GetActivities geeft het auditlogboek, filterbaar op soort actie,
// gebruiker, periode en zoekterm.
func (ctrl *ActivityController) GetActivities(c echo.Context) error {
	filter := repositories.ActivityFilter{
		Type:   c.QueryParam("type"),
		User:   c.QueryParam("user"),
		Period: c.QueryParam("period"),
		Search: c.QueryParam("search"),
	}
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			filter.Limit = l
		}
	}

	activities, err := ctrl.activityService.GetActivities(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, activities, "Activiteiten opgehaald", http.StatusOK)
}

func (ctrl *ActivityController) GetUniqueUsers(c echo.Context) error {
	users, err := ctrl.activityService.GetUniqueUsers(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, users, "Gebruikerslijst opgehaald", http.StatusOK)
}

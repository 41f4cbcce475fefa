package controllers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "materieelbeheer/pkg/errors"
)

// parseIDParam leest een numerieke padparameter; 0 is nooit een geldig id.
func parseIDParam(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewInvalidInputError("ongeldige %s in het pad: %q", name, c.Param(name))
	}
	return id, nil
}

package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"materieelbeheer/internal/services"
	"materieelbeheer/pkg/utils"
)

type DocumentController struct {
	documentService services.DocumentServiceInterface
	logger          *zap.Logger
}

func NewDocumentController(documentService services.DocumentServiceInterface, logger *zap.Logger) *DocumentController {
	return &DocumentController{documentService: documentService, logger: logger}
}

func (ctrl *DocumentController) GetByMaterial(c echo.Context) error {
	materialID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	docs, err := ctrl.documentService.GetByMaterial(c.Request().Context(), materialID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, docs, "Documenten opgehaald", http.StatusOK)
}

func (ctrl *DocumentController) UploadDocument(c echo.Context) error {
	materialID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	doc, err := ctrl.documentService.UploadDocument(c.Request().Context(), materialID,
		c.FormValue("doc_type"), c.FormValue("note"), file)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, doc, "Document geüpload", http.StatusCreated)
}

func (ctrl *DocumentController) DeleteDocument(c echo.Context) error {
	materialID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	documentID, err := parseIDParam(c, "documentId")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.documentService.DeleteDocument(c.Request().Context(), materialID, documentID); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Document verwijderd", http.StatusOK)
}

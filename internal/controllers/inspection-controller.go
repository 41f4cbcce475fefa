package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"materieelbeheer/internal/dto"
	"materieelbeheer/internal/services"
	"materieelbeheer/pkg/filestorage"
	"materieelbeheer/pkg/middleware"
	"materieelbeheer/pkg/utils"
)

type InspectionController struct {
	inspectionService services.InspectionServiceInterface
	lifecycleService  services.LifecycleServiceInterface
	exportService     services.ExportServiceInterface
	storage           filestorage.FileStorage
	logger            *zap.Logger
}

func NewInspectionController(
	inspectionService services.InspectionServiceInterface,
	lifecycleService services.LifecycleServiceInterface,
	exportService services.ExportServiceInterface,
	storage filestorage.FileStorage,
	logger *zap.Logger,
) *InspectionController {
	return &InspectionController{
		inspectionService: inspectionService,
		lifecycleService:  lifecycleService,
		exportService:     exportService,
		storage:           storage,
		logger:            logger,
	}
}

func (ctrl *InspectionController) CreateInspection(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.CreateInspectionDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	record, err := ctrl.inspectionService.CreateInspection(c.Request().Context(), userID, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, record, "Keuring geregistreerd", http.StatusCreated)
}

func (ctrl *InspectionController) GetByMaterial(c echo.Context) error {
	materialID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	records, err := ctrl.inspectionService.GetByMaterial(c.Request().Context(), materialID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, records, "Keuringshistoriek opgehaald", http.StatusOK)
}

func (ctrl *InspectionController) GetAll(c echo.Context) error {
	records, err := ctrl.inspectionService.GetAll(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, records, "Keuringshistoriek opgehaald", http.StatusOK)
}

// UploadCertificate koppelt een geüpload keuringscertificaat aan een record.
func (ctrl *InspectionController) UploadCertificate(c echo.Context) error {
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	file, err := c.FormFile("certificate")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	path, err := ctrl.storage.Save(file, "certificates")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.inspectionService.AttachCertificate(c.Request().Context(), recordID, path); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Certificaat gekoppeld", http.StatusOK)
}

// GetPriorityList geeft de risicogesorteerde keuringsprioriteiten.
func (ctrl *InspectionController) GetPriorityList(c echo.Context) error {
	list, err := ctrl.lifecycleService.PriorityList(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, list, "Prioriteitenlijst opgehaald", http.StatusOK)
}

func (ctrl *InspectionController) GetPriorityCounts(c echo.Context) error {
	counts, err := ctrl.lifecycleService.PriorityCounts(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, counts, "Tellers opgehaald", http.StatusOK)
}

// Reconcile herberekent de gecachte keuringstatussen.
func (ctrl *InspectionController) Reconcile(c echo.Context) error {
	result, err := ctrl.lifecycleService.Reconcile(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, result, "Reconciliatie afgerond", http.StatusOK)
}

// Export levert de volledige keuringshistoriek als xlsx-download.
func (ctrl *InspectionController) Export(c echo.Context) error {
	buf, filename, err := ctrl.exportService.ExportPriorityList(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

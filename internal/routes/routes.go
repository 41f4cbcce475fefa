package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"materieelbeheer/internal/controllers"
	"materieelbeheer/internal/repositories"
	"materieelbeheer/internal/services"
	"materieelbeheer/pkg/config"
	"materieelbeheer/pkg/filestorage"
	"materieelbeheer/pkg/middleware"
	"materieelbeheer/pkg/service"
)

// InitRouter bouwt de volledige keten repository -> service -> controller
// en hangt alle routes onder /api. Alles behalve login en refresh zit
// achter de JWT-middleware.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, cfg *config.Config, logger *zap.Logger) error {
	api := e.Group("/api")
	authMW := middleware.AuthMiddleware(jwtSvc, logger)

	fileStorage, err := filestorage.NewLocalStorage("uploads")
	if err != nil {
		return err
	}
	txManager := repositories.NewTxManager(dbConn)

	// Repositories.
	materialRepo := repositories.NewMaterialRepository(dbConn, logger)
	typeRepo := repositories.NewMaterialTypeRepository(dbConn)
	werfRepo := repositories.NewWerfRepository(dbConn)
	usageRepo := repositories.NewUsageRepository(dbConn)
	inspectionRepo := repositories.NewInspectionRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn, logger)
	activityRepo := repositories.NewActivityRepository(dbConn)
	documentRepo := repositories.NewDocumentRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// Services.
	materialService := services.NewMaterialService(materialRepo, typeRepo, werfRepo, logger)
	typeService := services.NewMaterialTypeService(typeRepo, logger)
	werfService := services.NewWerfService(werfRepo, logger)
	usageService := services.NewUsageService(usageRepo, materialRepo, werfRepo, userRepo, activityRepo, txManager, logger)
	lifecycleService := services.NewLifecycleService(
		materialRepo, inspectionRepo, usageRepo, cacheRepo,
		cfg.Inspection.LookaheadDays, cfg.Inspection.PriorityCacheTTL, logger)
	inspectionService := services.NewInspectionService(
		inspectionRepo, materialRepo, typeRepo, activityRepo, cacheRepo, txManager,
		cfg.Inspection.LookaheadDays, logger)
	exportService := services.NewExportService(lifecycleService, logger)
	userService := services.NewUserService(userRepo, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	activityService := services.NewActivityService(activityRepo, logger)
	documentService := services.NewDocumentService(documentRepo, materialRepo, fileStorage, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, logger)

	// Controllers.
	materialCtrl := controllers.NewMaterialController(materialService, lifecycleService, logger)
	typeCtrl := controllers.NewMaterialTypeController(typeService, logger)
	werfCtrl := controllers.NewWerfController(werfService, logger)
	usageCtrl := controllers.NewUsageController(usageService, logger)
	inspectionCtrl := controllers.NewInspectionController(inspectionService, lifecycleService, exportService, fileStorage, logger)
	userCtrl := controllers.NewUserController(userService, logger)
	authCtrl := controllers.NewAuthController(authService, logger)
	activityCtrl := controllers.NewActivityController(activityService, logger)
	documentCtrl := controllers.NewDocumentController(documentService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)

	secure := api.Group("", authMW)

	runAuthRouter(api, secure, authCtrl)
	runMaterialRouter(secure, materialCtrl, usageCtrl, inspectionCtrl, documentCtrl)
	runMaterialTypeRouter(secure, typeCtrl)
	runWerfRouter(secure, werfCtrl)
	runUsageRouter(secure, usageCtrl)
	runInspectionRouter(secure, inspectionCtrl)
	runUserRouter(secure, userCtrl)
	runActivityRouter(secure, activityCtrl)
	runDashboardRouter(secure, dashboardCtrl)

	logger.Info("routes geregistreerd")
	return nil
}

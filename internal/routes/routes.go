package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/config"
	"inventory-system/pkg/filestorage"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/service"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: начало создания маршрутов")

	api := e.Group("/api")

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Uploads.Dir)
	if err != nil {
		logger.Fatal("не удалось создать файловое хранилище", zap.Error(err))
	}
	txManager := repositories.NewPoolTxManager(dbConn)

	// --- РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	logRepo := repositories.NewEquipmentLogRepository(dbConn)
	locationRepo := repositories.NewLocationRepository(dbConn)
	categoryRepo := repositories.NewCategoryRepository(dbConn)
	typeRepo := repositories.NewEquipmentTypeRepository(dbConn)
	attachmentRepo := repositories.NewAttachmentRepository(dbConn)

	// --- СЕРВИСЫ ---
	permissionService := services.NewPermissionService(userRepo, cacheRepo, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	userService := services.NewUserService(userRepo, cacheRepo, logger)
	locationService := services.NewLocationService(locationRepo, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	typeService := services.NewEquipmentTypeService(typeRepo, logger)
	logService := services.NewEquipmentLogService(logRepo, logger)
	engine := services.NewStateDerivationEngine(services.DerivationLookups{
		Locations:  locationRepo,
		Categories: categoryRepo,
		Types:      typeRepo,
	}, logger)
	equipmentService := services.NewEquipmentService(txManager, equipmentRepo, engine, logService, logger)
	attachmentService := services.NewAttachmentService(attachmentRepo, fileStorage, logger)
	reportService := services.NewReportService(equipmentRepo, logger)

	// --- КОНТРОЛЛЕРЫ И МАРШРУТЫ ---
	authMW := middleware.NewAuthMiddleware(jwtSvc, permissionService, logger)
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authService, logger)
	runEquipmentRouter(secureGroup, equipmentService, logger, authMW)
	runEquipmentLogRouter(secureGroup, logService, logger, authMW)
	runDictionaryRouters(secureGroup, locationService, categoryService, typeService, logger, authMW)
	runUserRouter(secureGroup, userService, logger, authMW)
	runUploadRouter(secureGroup, attachmentService, logger, authMW)
	runReportRouter(secureGroup, reportService, logger, authMW)

	logger.Info("InitRouter: создание маршрутов завершено")
}

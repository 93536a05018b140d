package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

func runEquipmentLogRouter(g *echo.Group, logService services.EquipmentLogServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	ctrl := controllers.NewEquipmentLogController(logService, logger)

	g.GET("/logs", ctrl.GetLogs, authMW.RequirePermission(constants.PermLogsView))
	g.GET("/equipment/:id/logs", ctrl.GetLogsByEquipmentID, authMW.RequirePermission(constants.PermLogsView))
}

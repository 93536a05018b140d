package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

func runReportRouter(g *echo.Group, reportService services.ReportServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	ctrl := controllers.NewReportController(reportService, logger)

	g.GET("/reports/equipment", ctrl.GetEquipmentReport, authMW.RequirePermission(constants.PermExport))
}

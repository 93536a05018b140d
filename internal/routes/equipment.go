package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

func runEquipmentRouter(g *echo.Group, equipmentService services.EquipmentServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	ctrl := controllers.NewEquipmentController(equipmentService, logger)

	g.GET("/equipment", ctrl.GetEquipments, authMW.RequirePermission(constants.PermEquipmentView))
	g.GET("/equipment/:id", ctrl.FindEquipment, authMW.RequirePermission(constants.PermEquipmentView))
	g.POST("/equipment", ctrl.CreateEquipment, authMW.RequirePermission(constants.PermEquipmentCreate))
	g.PUT("/equipment/:id", ctrl.UpdateEquipment, authMW.RequirePermission(constants.PermEquipmentUpdate))
	g.PATCH("/equipment/:id/status", ctrl.UpdateEquipmentStatus, authMW.RequirePermission(constants.PermEquipmentUpdate))
	g.PATCH("/equipment/:id/location", ctrl.UpdateEquipmentLocation, authMW.RequirePermission(constants.PermEquipmentUpdate))
	g.DELETE("/equipment/:id", ctrl.DeleteEquipment, authMW.RequirePermission(constants.PermEquipmentDelete))
}

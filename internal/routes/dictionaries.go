package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

// Справочники: чтение доступно любому аутентифицированному пользователю,
// правки требуют dictionary:edit.
func runDictionaryRouters(
	g *echo.Group,
	locationService services.LocationServiceInterface,
	categoryService services.CategoryServiceInterface,
	typeService services.EquipmentTypeServiceInterface,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	edit := authMW.RequirePermission(constants.PermDictionaryEdit)

	locationCtrl := controllers.NewLocationController(locationService, logger)
	g.GET("/locations", locationCtrl.GetLocations)
	g.GET("/locations/:id", locationCtrl.FindLocation)
	g.POST("/locations", locationCtrl.CreateLocation, edit)
	g.PUT("/locations/:id", locationCtrl.UpdateLocation, edit)
	g.DELETE("/locations/:id", locationCtrl.DeleteLocation, edit)

	categoryCtrl := controllers.NewCategoryController(categoryService, logger)
	g.GET("/categories", categoryCtrl.GetCategories)
	g.GET("/categories/:id", categoryCtrl.FindCategory)
	g.POST("/categories", categoryCtrl.CreateCategory, edit)
	g.PUT("/categories/:id", categoryCtrl.UpdateCategory, edit)
	g.DELETE("/categories/:id", categoryCtrl.DeleteCategory, edit)

	typeCtrl := controllers.NewEquipmentTypeController(typeService, logger)
	g.GET("/equipment-types", typeCtrl.GetEquipmentTypes)
	g.GET("/equipment-types/:id", typeCtrl.FindEquipmentType)
	g.POST("/equipment-types", typeCtrl.CreateEquipmentType, edit)
	g.PUT("/equipment-types/:id", typeCtrl.UpdateEquipmentType, edit)
	g.DELETE("/equipment-types/:id", typeCtrl.DeleteEquipmentType, edit)
}

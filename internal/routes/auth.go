package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
)

// Аутентификация живет вне защищенной группы.
func runAuthRouter(g *echo.Group, authService services.AuthServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewAuthController(authService, logger)

	g.POST("/auth/login", ctrl.Login)
	g.POST("/auth/refresh", ctrl.RefreshToken)
}

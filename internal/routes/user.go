package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

func runUserRouter(g *echo.Group, userService services.UserServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	ctrl := controllers.NewUserController(userService, logger)
	manage := authMW.RequirePermission(constants.PermUsersManage)

	g.GET("/users", ctrl.GetUsers, manage)
	g.GET("/users/:id", ctrl.FindUser, manage)
	g.POST("/users", ctrl.CreateUser, manage)
	g.PUT("/users/:id", ctrl.UpdateUser, manage)
	g.DELETE("/users/:id", ctrl.DeleteUser, manage)
}

package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

func runUploadRouter(g *echo.Group, attachmentService services.AttachmentServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	ctrl := controllers.NewUploadController(attachmentService, logger)
	upload := authMW.RequirePermission(constants.PermFilesUpload)

	g.POST("/uploads", ctrl.Upload, upload)
	g.DELETE("/uploads/:id", ctrl.Delete, upload)
}

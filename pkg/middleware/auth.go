package middleware

import (
	"context"
	"strings"

	"inventory-system/pkg/contextkeys"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/service"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PermissionChecker отвечает на вопрос "есть ли у роли это право".
// Реализация живет в services и кеширует права в Redis.
type PermissionChecker interface {
	HasPermission(ctx context.Context, role string, permission string) (bool, error)
}

type AuthMiddleware struct {
	jwtService  service.JWTService
	permissions PermissionChecker
	logger      *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, permissions PermissionChecker, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtSvc,
		permissions: permissions,
		logger:      logger,
	}
}

// Auth проверяет access-токен и кладет UserID и роль в контекст запроса.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: Пустой заголовок Authorization")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: Неверный формат заголовка Authorization")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: Ошибка валидации токена", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: Попытка доступа с refresh токеном")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UserRoleKey, claims.Role)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequirePermission возвращает middleware, пропускающий только роли с нужным правом.
// Вешается на маршрут после Auth.
func (m *AuthMiddleware) RequirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			role, ok := ctx.Value(contextkeys.UserRoleKey).(string)
			if !ok || role == "" {
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}

			allowed, err := m.permissions.HasPermission(ctx, role, permission)
			if err != nil {
				m.logger.Error("RequirePermission: не удалось проверить права",
					zap.String("role", role), zap.String("permission", permission), zap.Error(err))
				return utils.ErrorResponse(c, err, m.logger)
			}
			if !allowed {
				m.logger.Warn("RequirePermission: доступ запрещен",
					zap.String("role", role), zap.String("permission", permission))
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}

			return next(c)
		}
	}
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
)

// rolePermissionsTTL ограничивает жизнь кеша: правки role_permissions
// в БД доезжают до запросов не позднее чем через эту задержку.
const rolePermissionsTTL = 10 * time.Minute

type PermissionServiceInterface interface {
	HasPermission(ctx context.Context, role string, permission string) (bool, error)
}

// PermissionService отдает права роли, кешируя их в Redis JSON-массивом.
// Недоступный Redis деградирует до прямого чтения из БД.
type PermissionService struct {
	userRepo repositories.UserRepositoryInterface
	cache    repositories.CacheRepositoryInterface
	logger   *zap.Logger
}

func NewPermissionService(userRepo repositories.UserRepositoryInterface, cache repositories.CacheRepositoryInterface, logger *zap.Logger) PermissionServiceInterface {
	return &PermissionService{userRepo: userRepo, cache: cache, logger: logger}
}

func (s *PermissionService) HasPermission(ctx context.Context, role string, permission string) (bool, error) {
	permissions, err := s.permissionsForRole(ctx, role)
	if err != nil {
		return false, err
	}
	for _, p := range permissions {
		if p == permission {
			return true, nil
		}
	}
	return false, nil
}

func (s *PermissionService) permissionsForRole(ctx context.Context, role string) ([]string, error) {
	key := fmt.Sprintf(constants.CacheKeyRolePermissions, role)

	if raw, err := s.cache.Get(ctx, key); err == nil && raw != "" {
		var permissions []string
		if err := json.Unmarshal([]byte(raw), &permissions); err == nil {
			return permissions, nil
		}
		s.logger.Warn("битая запись прав в кеше, перечитываем из БД", zap.String("key", key))
	}

	permissions, err := s.userRepo.GetRolePermissions(ctx, role)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(permissions); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded), rolePermissionsTTL); err != nil {
			s.logger.Warn("не удалось закешировать права роли",
				zap.String("role", role), zap.Error(err))
		}
	}

	return permissions, nil
}

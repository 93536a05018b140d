package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, limit, offset uint64) ([]dto.UserDTO, uint64, error)
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) error
	DeleteUser(ctx context.Context, callerID, id uint64) error
	InvalidateRoleCache(ctx context.Context, roles ...string) error
}

type UserService struct {
	repo   repositories.UserRepositoryInterface
	cache  repositories.CacheRepositoryInterface
	logger *zap.Logger
}

func NewUserService(repo repositories.UserRepositoryInterface, cache repositories.CacheRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{repo: repo, cache: cache, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context, limit, offset uint64) ([]dto.UserDTO, uint64, error) {
	users, total, err := s.repo.GetUsers(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, mapUser(&u))
	}
	return result, total, nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	mapped := mapUser(user)
	return &mapped, nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, fmt.Errorf("не удалось захешировать пароль: %w", err)
	}

	user := &entities.User{
		Username:     payload.Username,
		PasswordHash: hash,
		Role:         payload.Role,
	}
	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info("пользователь создан",
		zap.Uint64("userId", id), zap.String("role", payload.Role))

	mapped := mapUser(user)
	return &mapped, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) error {
	var passwordHash *string
	if payload.Password != nil {
		hash, err := utils.HashPassword(*payload.Password)
		if err != nil {
			return fmt.Errorf("не удалось захешировать пароль: %w", err)
		}
		passwordHash = &hash
	}

	if err := s.repo.UpdateUser(ctx, id, passwordHash, payload.Role); err != nil {
		return err
	}

	// Смена роли сразу меняет действующие права, кеш ролей не трогаем:
	// там лежат права роли, а не пользователя.
	if payload.Role != nil {
		s.logger.Info("роль пользователя изменена",
			zap.Uint64("userId", id), zap.String("role", *payload.Role))
	}
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, callerID, id uint64) error {
	if callerID == id {
		return apperrors.NewInvalidInputError("нельзя удалить собственную учётную запись")
	}
	return s.repo.DeleteUser(ctx, id)
}

// InvalidateRoleCache сбрасывает кешированные права роли. Используется
// сидером и админскими правками role_permissions.
func (s *UserService) InvalidateRoleCache(ctx context.Context, roles ...string) error {
	keys := make([]string, 0, len(roles))
	for _, role := range roles {
		keys = append(keys, fmt.Sprintf(constants.CacheKeyRolePermissions, role))
	}
	return s.cache.Del(ctx, keys...)
}

func mapUser(u *entities.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: formatTime(u.CreatedAt),
	}
}

package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/pkg/constants"
	"inventory-system/pkg/utils"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		log.Println("  ⚠️  ADMIN_PASSWORD не задан, используется пароль по умолчанию")
	}

	var existingID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&existingID)
	if err == nil {
		log.Printf("  - Пользователь %q уже существует, пропускаем", username)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("ошибка проверки существования пользователя: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("не удалось захешировать пароль: %w", err)
	}

	_, err = db.Exec(ctx,
		"INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3)",
		username, hash, constants.RoleAdmin)
	if err != nil {
		return fmt.Errorf("не удалось создать администратора: %w", err)
	}

	log.Printf("  - Администратор %q создан", username)
	return nil
}

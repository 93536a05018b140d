package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/pkg/config"
)

// SeedDictionaries наполняет справочники локаций, категорий и типов.
// Повторный запуск безопасен: все вставки идемпотентны.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения справочников...")

	if err := seedLocations(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Локаций: %v", err)
	}
	if err := seedCategories(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Категорий: %v", err)
	}
	if err := seedEquipmentTypes(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Типов оборудования: %v", err)
	}

	log.Println("✅ Наполнение справочников завершено!")
}

// SeedAdmin создает администратора, если его еще нет.
func SeedAdmin(db *pgxpool.Pool, cfg *config.Config) {
	ctx := context.Background()
	log.Println("▶️  Запуск создания администратора...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка создания администратора: %v", err)
	}

	log.Println("✅ Администратор настроен!")
}

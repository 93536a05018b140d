package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Склад "Lager" обязателен: движок статусов опирается на это название.
var defaultLocations = []string{
	"Lager",
	"Große Bühne",
	"Kleine Bühne",
	"Werkstatt",
	"Probenraum",
}

var defaultCategories = []string{
	"Ton",
	"Licht",
	"Video",
	"Bühnentechnik",
	"Requisiten",
}

var defaultEquipmentTypes = []string{
	"Mikrofon",
	"Lautsprecher",
	"Mischpult",
	"Scheinwerfer",
	"Dimmer",
	"Nebelmaschine",
	"Kabel",
	"Stativ",
}

func seedLocations(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Локации...")
	for _, name := range defaultLocations {
		_, err := db.Exec(ctx,
			"INSERT INTO locations (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", name)
		if err != nil {
			return fmt.Errorf("не удалось вставить локацию %q: %w", name, err)
		}
	}
	return nil
}

func seedCategories(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Категории...")
	for _, name := range defaultCategories {
		_, err := db.Exec(ctx,
			"INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", name)
		if err != nil {
			return fmt.Errorf("не удалось вставить категорию %q: %w", name, err)
		}
	}
	return nil
}

func seedEquipmentTypes(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Типы оборудования...")
	for _, name := range defaultEquipmentTypes {
		_, err := db.Exec(ctx,
			"INSERT INTO equipment_types (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", name)
		if err != nil {
			return fmt.Errorf("не удалось вставить тип оборудования %q: %w", name, err)
		}
	}
	return nil
}

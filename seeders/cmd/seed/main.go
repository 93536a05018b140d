package main

import (
	"flag"
	"log"

	"inventory-system/pkg/config"
	"inventory-system/pkg/database/postgresql"
	"inventory-system/seeders"
)

func main() {
	runDictionaries := flag.Bool("dictionaries", false, "Наполнить справочники (локации, категории, типы)")
	runAdmin := flag.Bool("admin", false, "Создать администратора")
	runAll := flag.Bool("all", false, "Запустить все сидеры")

	flag.Parse()

	if !*runDictionaries && !*runAdmin && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры:")
		log.Println("  go run ./seeders/cmd/seed -dictionaries")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()

	if cfg.Postgres.AutoMigrate {
		if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
			log.Fatalf("❌ Не удалось применить миграции: %v", err)
		}
	}

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if *runDictionaries || *runAll {
		seeders.SeedDictionaries(db)
	}
	if *runAdmin || *runAll {
		seeders.SeedAdmin(db, cfg)
	}

	log.Println("🎉 Сидирование завершено.")
}

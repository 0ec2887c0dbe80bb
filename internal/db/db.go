package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"go-moment/internal/config"
	"go-moment/internal/goal"
)

var DB *gorm.DB

func Init(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}

	// Auto-migrate the goal store
	if err := db.AutoMigrate(&goal.GoalRecord{}); err != nil {
		return err
	}

	DB = db
	log.Printf("Database connected and migrated (%s)", cfg.Database.Driver)
	return nil
}

// Package db opens the GORM database connection used by all adapters.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authadapters "todolist_backend/internal/feature/auth/adapters"
	authentity "todolist_backend/internal/feature/auth/domain/entity"
	todoentity "todolist_backend/internal/feature/todos/domain/entity"
	"todolist_backend/internal/platform/config"
)

// OpenDB connects to MySQL with a retry loop and optionally runs the
// schema migrations. It terminates the process when the database never
// becomes reachable.
func OpenDB(cfg config.DBConfig) *gorm.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.Migrate {
		if err := db.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&todoentity.Todo{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

package main

import (
	"fmt"
	"os"

	"lifelink-backend/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
)

// Applies schema migrations from db/migrations. Usage:
//
//	migrate up
//	migrate down
func main() {
	if len(os.Args) < 2 {
		logrus.Fatal("Usage: migrate [up|down]")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
	)

	m, err := migrate.New("file://db/migrations", dsn)
	if err != nil {
		logrus.Fatalf("Failed to initialize migrations: %v", err)
	}
	defer m.Close()

	switch os.Args[1] {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		logrus.Fatalf("Unknown command: %s", os.Args[1])
	}

	if err != nil && err != migrate.ErrNoChange {
		logrus.Fatalf("Migration failed: %v", err)
	}

	logrus.Info("Migrations applied successfully")
}

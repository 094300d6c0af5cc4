package main

import (
	"errors"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

// Aplica las migraciones de la base de datos.
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	migrator, err := migrate.New("file://migrations", dsn)
	if err != nil {
		log.Fatalf("init migrator failed: %v", err)
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	switch direction {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	default:
		log.Fatalf("unknown direction %q (want up or down)", direction)
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no migrations to apply")
			return
		}
		log.Fatalf("migrate %s failed: %v", direction, err)
	}
	log.Printf("migrate %s complete", direction)
}

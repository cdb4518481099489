// Command migrate creates the store schema if it does not exist yet.
package main

import (
	"context"

	"caretrack/internal/adapter/postgres"
	"caretrack/internal/dsn"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	db := postgres.New(dsn.FromEnv())
	defer func() { _ = db.Close() }()

	if _, err := db.Conn(ctx); err != nil {
		log.Fatalf("connect store: %v", err)
	}
	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Info("schema is up to date")
}

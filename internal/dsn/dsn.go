// Package dsn builds the store connection string from the environment.
package dsn

import (
	"fmt"
	"os"
)

// FromEnv returns DATABASE_URL when set, otherwise a connection string
// assembled from the DB_* variables with local defaults.
func FromEnv() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := env("DB_HOST", "localhost")
	port := env("DB_PORT", "5432")
	user := env("DB_USER", "postgres")
	pass := env("DB_PASS", "postgres")
	name := env("DB_NAME", "caretrack")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

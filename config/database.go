package config

import (
	"context"
	"database/sql"
	"fmt"

	"estore-api/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
)

var DB *pgxpool.Pool

func dsn() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		AppConfig.DBHost,
		AppConfig.DBPort,
		AppConfig.DBUser,
		AppConfig.DBPassword,
		AppConfig.DBName,
		AppConfig.DBSSLMode,
	)
}

func ConnectDB() {
	var err error
	DB, err = pgxpool.New(context.Background(), dsn())
	if err != nil {
		log.Fatal().Err(err).Msg("unable to create connection pool")
	}

	if err = DB.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("unable to ping database")
	}

	log.Info().Msg("database connected")
}

// MigrateDB applies pending goose migrations. goose works against
// database/sql, so it gets its own short-lived connection via the pgx
// stdlib adapter rather than the pool.
func MigrateDB() {
	db := stdlib.OpenDB(*DB.Config().ConnConfig)
	defer func(db *sql.DB) { _ = db.Close() }(db)

	if err := migrations.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	log.Info().Msg("database migrations applied")
}

func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Info().Msg("database connection closed")
	}
}

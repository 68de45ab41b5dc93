package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	postgresMaxAttempts = 10
	postgresRetryDelay  = 2 * time.Second
)

// ConnectPostgres opens a gorm connection, retrying while the database starts
// up, and migrates the given models.
func ConnectPostgres(dsn string, models ...any) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := 1; i <= postgresMaxAttempts; i++ {
		log.Info().Int("attempt", i).Int("max_attempts", postgresMaxAttempts).Msg("[database][postgres] connecting")

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn), TranslateError: true})
		if err == nil {
			break
		}
		log.Warn().Err(err).Msg("[database][postgres] connect failed")
		time.Sleep(postgresRetryDelay)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to postgres after %d attempts: %w", postgresMaxAttempts, err)
	}

	if err := db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info().Msg("[database][postgres] connected")
	return db, nil
}

package database

import (
	"database/sql"
	"fmt"
	"time"

	"casedesk/config"
	"casedesk/pkg/logger"

	_ "github.com/lib/pq"
)

const (
	pingAttempts = 5
	pingBackoff  = 2 * time.Second
)

// Connect opens the seed catalogue and pings it with a short retry loop,
// since hosted Postgres instances often need a moment after a cold start.
func Connect(cfg config.SeedConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open seed database: %w", err)
	}

	for i := 0; i < pingAttempts; i++ {
		if err = db.Ping(); err == nil {
			logger.Sugar.Infof("Connected to seed database %s@%s", cfg.DBName, cfg.Host)
			return db, nil
		}
		logger.Sugar.Infof("Seed database connection failed, retrying in %s... (%v)", pingBackoff, err)
		time.Sleep(pingBackoff)
	}
	db.Close()
	return nil, fmt.Errorf("seed database unreachable after %d attempts: %w", pingAttempts, err)
}

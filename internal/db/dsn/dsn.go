// Package dsn provides Data Source Name construction for the supported
// database engines.
package dsn

import (
	"fmt"

	"github.com/GoVideoHub/GoVideoHub/internal/config"
)

// Create builds the Data Source Name for the configured engine.
func Create(cfg *config.Config) string {
	db := cfg.DB

	switch db.GormEngine {
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s %s",
			db.Host,
			db.Port,
			db.User,
			db.Password,
			db.Name,
			sslMode(db.SSLMode),
			db.Extras,
		)
	case "sqlite":
		// Name is a file path here, ":memory:" is accepted for tests.
		return db.Name
	default: // mysql
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			db.User,
			db.Password,
			db.Host,
			db.Port,
			db.Name,
			db.Extras,
		)
	}
}

func sslMode(mode string) string {
	if mode == "" {
		return "disable"
	}

	return mode
}

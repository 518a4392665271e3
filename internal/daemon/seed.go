package daemon

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/GoVideoHub/GoVideoHub/internal/db/controller/setting"
	"github.com/GoVideoHub/GoVideoHub/internal/db/models"
)

// defaultSettings are created on first start so admins find the common
// knobs in the settings UI instead of having to know their names.
var defaultSettings = map[string]string{ //nolint:gochecknoglobals
	"motd":           "",
	"theme":          "default",
	"signup_message": "",
}

// seed creates the default runtime settings when the table is empty and
// returns the store used by the web service.
func seed(db *gorm.DB, lg zerolog.Logger) *setting.Store {
	store := setting.NewStore(db)

	var count int64

	if result := db.Model(&models.Setting{}).Count(&count); result.Error != nil {
		lg.Error().Err(result.Error).Msg("failed to count settings, skipping seed")

		return store
	}

	if count == 0 {
		for name, value := range defaultSettings {
			if _, err := store.Create(name, []byte(value)); err != nil {
				lg.Warn().Err(err).Str("name", name).Msg("failed to seed setting")
			}
		}
	}

	return store
}

package config

import (
	"github.com/GoVideoHub/GoVideoHub/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode    bool        `mapstructure:"dev_mode"` // enable dev mode for development
	DB         DB          `mapstructure:"database"`
	Log        logger.Log  `mapstructure:"log"`
	Instance   Instance    `mapstructure:"instance"`
	Admin      Admin       `mapstructure:"admin"`
	Signup     Signup      `mapstructure:"signup"`
	User       User        `mapstructure:"user"`
	Trans      Transcoding `mapstructure:"transcoding"`
	Federation Federation  `mapstructure:"federation"`
	Webserver  Webserver   `mapstructure:"webserver"`
}

// Webserver implement webserver settings.
type Webserver struct {
	HTTPS        bool   `mapstructure:"https"`         // true = the instance is served over https
	Hostname     string `mapstructure:"hostname"`      // public hostname of the instance
	Port         int    `mapstructure:"port"`          // public port of the instance
	ListenPort   int    `mapstructure:"listen_port"`   // local port the fiber server binds to
	ShutDownTime int    `mapstructure:"shutdown_time"` // wait time for shutdown in seconds
}

// Instance describes how the instance presents itself to visitors and
// to the federation.
type Instance struct {
	Name             string `mapstructure:"name"`
	ShortDescription string `mapstructure:"short_description"`
	DefaultPage      string `mapstructure:"default_page"` // landing route, e.g. /videos/trending
}

// Admin holds the instance administrator contact.
type Admin struct {
	Email string `mapstructure:"email"`
}

// Signup controls account registration.
type Signup struct {
	Enabled bool `mapstructure:"enabled"`
	Limit   int  `mapstructure:"limit"` // -1 means unlimited
}

// User holds per-account defaults.
type User struct {
	VideoQuota      int64 `mapstructure:"video_quota"`       // bytes, -1 means unlimited
	VideoQuotaDaily int64 `mapstructure:"video_quota_daily"` // bytes, -1 means unlimited
}

// Transcoding settings are stored here and consumed by the external
// transcoding workers. This service only carries the values.
type Transcoding struct {
	Enabled     bool  `mapstructure:"enabled"`
	Threads     int   `mapstructure:"threads"`
	Resolutions []int `mapstructure:"resolutions"` // vertical resolutions, e.g. 240, 360, 720
}

// Federation settings for the ActivityPub layer.
type Federation struct {
	Enabled           bool `mapstructure:"enabled"`
	MaxFollowsPerPage int  `mapstructure:"max_follows_per_page"`
}

// Package daemon wires configuration, database and web service together
// and runs the instance until shutdown.
package daemon

import (
	"context"
	"strconv"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoVideoHub/GoVideoHub/internal/config"
	"github.com/GoVideoHub/GoVideoHub/internal/db/dsn"
	"github.com/GoVideoHub/GoVideoHub/internal/db/models"
	"github.com/GoVideoHub/GoVideoHub/internal/logger"
	"github.com/GoVideoHub/GoVideoHub/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	holder     *config.Holder
	webService *web.Service
	log        zerolog.Logger
}

// New creates a new Daemon instance around the provided configuration.
func New(cfg *config.Config, dir string) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	if err := logger.Init(cfg.Log); err != nil {
		panic(err)
	}

	dlog := logger.WithComponent("daemon")

	holder := config.NewHolder(*cfg, dir)

	db, err := gorm.Open(openDialector(cfg), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if err = db.AutoMigrate(&models.Setting{}); err != nil {
		panic("failed to migrate database")
	}

	store := seed(db, dlog)

	return &Daemon{
		holder:     holder,
		webService: web.New(holder, store),
		log:        dlog,
	}
}

// Start starts the config watcher and the web service. It blocks until
// the web service stops.
func (d *Daemon) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := d.holder.StartWatcher(ctx); err != nil {
		d.log.Error().Err(err).Msg("config watcher unavailable, hot reload via API only")
	}

	snap := d.holder.Get()

	// WaitShutdown drains the LB and stops fiber, which unblocks Start.
	go d.webService.WaitShutdown()

	return d.webService.Start(":" + strconv.Itoa(snap.Config.Webserver.ListenPort))
}

// openDialector selects the gorm driver matching the configured engine.
// The engine was already validated during config loading.
func openDialector(cfg *config.Config) gorm.Dialector {
	switch cfg.DB.GormEngine {
	case "postgres":
		return gormpostgres.Open(dsn.Create(cfg))
	case "sqlite":
		return sqlite.Open(dsn.Create(cfg))
	default:
		return gormmysql.Open(dsn.Create(cfg))
	}
}

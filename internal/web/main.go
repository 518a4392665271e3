// Package web implements the HTTP API of the instance.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoVideoHub/GoVideoHub/internal/config"
	"github.com/GoVideoHub/GoVideoHub/internal/db/controller/setting"
	fiberlogger "github.com/GoVideoHub/GoVideoHub/internal/logger/adapter/fiber"
	serverconfig "github.com/GoVideoHub/GoVideoHub/internal/web/handler/serverconfig"
	settingshandler "github.com/GoVideoHub/GoVideoHub/internal/web/handler/settings"
)

// CheckAlivePath is probed by load balancers.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	holder       *config.Holder
	store        *setting.Store
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	doneFiber := make(chan bool)

	s.alive.Store(true)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for a termination signal and drains gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	shutDownTime := s.holder.Get().Config.Webserver.ShutDownTime

	// Graceful shutdown for reverse proxies: fail checkalive first so the
	// LB removes this pod from its active targets.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 for %d seconds to let the LB drain this pod",
			shutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(shutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service around the config holder and the runtime
// settings store.
func New(holder *config.Holder, store *setting.Store) *Service {
	if holder == nil {
		panic("config holder cannot be nil")
	}

	snap := holder.Get()

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        snap.Config.Instance.Name,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	// access log middleware
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        snap.Config.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	service := &Service{
		App:    app,
		holder: holder,
		store:  store,
	}

	app.Get(CheckAlivePath, service.checkAlive)

	// handlers register their own routes
	serverconfig.Handler.Init(app, holder)
	settingshandler.Handler.Init(app, holder, store)

	return service
}

// checkAlive reports 200 while serving and 503 while draining.
func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// Package serverconfig exposes the instance configuration over the API:
// the public config consumed by web clients, the about block, and the
// administrative reload trigger.
package serverconfig

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoVideoHub/GoVideoHub/internal/config"
	"github.com/GoVideoHub/GoVideoHub/internal/constants"
	"github.com/GoVideoHub/GoVideoHub/internal/web/handler"
)

// Path is the base path of the server config endpoints.
const Path = handler.APIBase + "/config"

// Service is the server config handler service.
type Service struct {
	holder *config.Holder
}

// Handler is the server config handler.
var Handler = Service{} //nolint:gochecknoglobals

// PublicConfig is the config document served to web clients.
type PublicConfig struct {
	Instance struct {
		Name             string `json:"name"`
		ShortDescription string `json:"shortDescription"`
		DefaultPage      string `json:"defaultPage"`
	} `json:"instance"`
	Webserver struct {
		URL      string `json:"url"`
		Hostname string `json:"hostname"`
	} `json:"webserver"`
	Signup struct {
		Enabled bool `json:"enabled"`
	} `json:"signup"`
	Transcoding struct {
		Enabled     bool  `json:"enabled"`
		Resolutions []int `json:"enabledResolutions"`
	} `json:"transcoding"`
	Federation struct {
		Enabled bool `json:"enabled"`
	} `json:"federation"`
	Video struct {
		Categories map[int]string    `json:"categories"`
		Licences   map[int]string    `json:"licences"`
		Languages  map[string]string `json:"languages"`
		Privacies  map[int]string    `json:"privacies"`
	} `json:"video"`
	Pagination constants.Pagination `json:"pagination"`
}

// About is the instance contact document.
type About struct {
	Instance struct {
		Name             string `json:"name"`
		ShortDescription string `json:"shortDescription"`
	} `json:"instance"`
	AdminEmail string `json:"adminEmail"`
}

// Init initializes the server config handler.
func (s *Service) Init(app *fiber.App, holder *config.Holder) {
	if app == nil || holder == nil {
		log.Fatal().Msg(handler.ErrNilAHFatalLogMsg)
		return
	}

	s.holder = holder

	app.Get(Path, s.Get)
	app.Get(Path+"/about", s.GetAbout)
	app.Post(Path+"/reload", s.Reload)
}

// Get serves the public config built from the current snapshot.
func (s *Service) Get(c *fiber.Ctx) error {
	snap := s.holder.Get()

	var pc PublicConfig

	pc.Instance.Name = snap.Config.Instance.Name
	pc.Instance.ShortDescription = snap.Config.Instance.ShortDescription
	pc.Instance.DefaultPage = snap.Config.Instance.DefaultPage
	pc.Webserver.URL = snap.Derived.URL
	pc.Webserver.Hostname = snap.Config.Webserver.Hostname
	pc.Signup.Enabled = snap.Config.Signup.Enabled
	pc.Transcoding.Enabled = snap.Config.Trans.Enabled
	pc.Transcoding.Resolutions = snap.Config.Trans.Resolutions
	pc.Federation.Enabled = snap.Config.Federation.Enabled
	pc.Video.Categories = constants.VideoCategories
	pc.Video.Licences = constants.VideoLicences
	pc.Video.Languages = constants.VideoLanguages
	pc.Video.Privacies = constants.VideoPrivacies
	pc.Pagination = constants.PaginationGlobal

	return c.JSON(pc)
}

// GetAbout serves the instance contact block.
func (s *Service) GetAbout(c *fiber.Ctx) error {
	snap := s.holder.Get()

	var about About

	about.Instance.Name = snap.Config.Instance.Name
	about.Instance.ShortDescription = snap.Config.Instance.ShortDescription
	about.AdminEmail = snap.Config.Admin.Email

	return c.JSON(about)
}

// Reload re-reads the configuration from disk. On failure the previous
// snapshot stays active and the error is reported to the caller.
func (s *Service) Reload(c *fiber.Ctx) error {
	if err := s.holder.Reload(); err != nil {
		log.Error().Err(err).Msg("config reload via API failed")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	snap := s.holder.Get()

	log.Info().Str("url", snap.Derived.URL).Msg("config reloaded via API")

	return c.JSON(fiber.Map{
		"status": "reloaded",
		"url":    snap.Derived.URL,
	})
}

// Package settings implements the admin API for the runtime settings
// stored in the database, with pagination and search.
package settings

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoVideoHub/GoVideoHub/internal/config"
	"github.com/GoVideoHub/GoVideoHub/internal/constants"
	"github.com/GoVideoHub/GoVideoHub/internal/db/controller/setting"
	"github.com/GoVideoHub/GoVideoHub/internal/web/handler"
)

// Path is the base path of the settings endpoints.
const Path = handler.APIBase + "/settings"

// Service is the settings handler service.
type Service struct {
	holder *config.Holder
	store  *setting.Store
}

// Handler is the settings handler.
var Handler = Service{} //nolint:gochecknoglobals

// Item is one runtime setting in the API representation.
type Item struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updatedAt"`
}

// Page is the paginated settings response.
type Page struct {
	Data        []Item `json:"data"`
	CurrentPage int    `json:"currentPage"`
	PageSize    int    `json:"pageSize"`
	TotalItems  int    `json:"totalItems"`
	TotalPages  int    `json:"totalPages"`
	HasPrevPage bool   `json:"hasPrevPage"`
	HasNextPage bool   `json:"hasNextPage"`
	SearchQuery string `json:"searchQuery,omitempty"`
}

// Init initializes the settings handler.
func (s *Service) Init(app *fiber.App, holder *config.Holder, store *setting.Store) {
	if app == nil || holder == nil || store == nil {
		log.Fatal().Msg(handler.ErrNilAHFatalLogMsg)
		return
	}

	s.holder = holder
	s.store = store

	app.Get(Path, s.List)
	app.Put(Path+"/:name", s.Put)
	app.Delete(Path+"/:name", s.Delete)
}

// List handles the paginated settings listing.
func (s *Service) List(c *fiber.Ctx) error {
	page, pageSize := paginationParams(c)
	searchQuery := c.Query("search", "")

	all, err := s.store.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("failed to list settings")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list settings",
		})
	}

	items := make([]Item, 0, len(all))

	for _, st := range all {
		it := Item{
			Name:      st.Name,
			Value:     string(st.Value),
			UpdatedAt: st.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}

		if includeItem(it, searchQuery) {
			items = append(items, it)
		}
	}

	totalItems := len(items)
	totalPages, page := totalPagesAndAdjust(totalItems, pageSize, page)
	startIdx, endIdx := pageSliceBounds(totalItems, pageSize, page)

	return c.JSON(Page{
		Data:        items[startIdx:endIdx],
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasPrevPage: page > 1,
		HasNextPage: page < totalPages,
		SearchQuery: searchQuery,
	})
}

// Put upserts a setting by name. The request body is the raw value.
func (s *Service) Put(c *fiber.Ctx) error {
	name := c.Params("name")

	st, err := s.store.Set(name, c.Body())
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, setting.ErrSettingNameEmpty) {
			status = fiber.StatusBadRequest
		}

		log.Error().Err(err).Str("name", name).Msg("failed to store setting")

		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	log.Info().Str("name", st.Name).Msg("runtime setting stored")

	return c.JSON(Item{
		Name:      st.Name,
		Value:     string(st.Value),
		UpdatedAt: st.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	})
}

// Delete removes a setting by name.
func (s *Service) Delete(c *fiber.Ctx) error {
	name := c.Params("name")

	if err := s.store.Delete(name); err != nil {
		status := fiber.StatusInternalServerError

		switch {
		case errors.Is(err, setting.ErrSettingNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, setting.ErrSettingNameEmpty):
			status = fiber.StatusBadRequest
		}

		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// paginationParams parses and normalizes page and pageSize query parameters
// against the global pagination bounds.
func paginationParams(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	pageSize := c.QueryInt("pageSize", constants.PaginationGlobal.CountDefault)
	if pageSize < 1 {
		pageSize = constants.PaginationGlobal.CountDefault
	}

	if pageSize > constants.PaginationGlobal.CountMax {
		pageSize = constants.PaginationGlobal.CountMax
	}

	return page, pageSize
}

// includeItem returns true if the item matches the search query.
func includeItem(it Item, searchQuery string) bool {
	if searchQuery == "" {
		return true
	}

	q := strings.ToLower(searchQuery)

	return strings.Contains(strings.ToLower(it.Name), q) ||
		strings.Contains(strings.ToLower(it.Value), q)
}

// totalPagesAndAdjust computes total pages and adjusts the page into range.
func totalPagesAndAdjust(totalItems, pageSize, page int) (int, int) {
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page > totalPages {
		page = totalPages
	}

	return totalPages, page
}

// pageSliceBounds calculates start and end indices for slicing a page.
func pageSliceBounds(totalItems, pageSize, page int) (int, int) {
	startIdx := (page - 1) * pageSize

	endIdx := startIdx + pageSize
	if endIdx > totalItems {
		endIdx = totalItems
	}

	if startIdx < 0 {
		startIdx = 0
	}

	if startIdx > endIdx {
		startIdx = endIdx
	}

	return startIdx, endIdx
}

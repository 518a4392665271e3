package serverconfig

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoVideoHub/GoVideoHub/internal/config"
)

const testConfig = `
[webserver]
hostname = "video.example.com"
port = 443
https = true

[database]
engine = "sqlite"
name = "govideohub"

[admin]
email = "admin@example.com"

[instance]
name = "Test Tube"
short_description = "A test instance"
`

// setupTestHolder reads a config fixture from a temp dir and wraps it in
// a holder, so Reload has a real directory to re-read.
func setupTestHolder(t *testing.T) (*config.Holder, string) {
	t.Helper()

	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "default.toml"), []byte(testConfig), 0o600)
	require.NoError(t, err)

	cfg, err := config.ReadConfig(dir)
	require.NoError(t, err)

	return config.NewHolder(cfg, dir), dir
}

func setupTestApp(service *Service) *fiber.App {
	app := fiber.New()
	app.Get(Path, service.Get)
	app.Get(Path+"/about", service.GetAbout)
	app.Post(Path+"/reload", service.Reload)

	return app
}

func TestService_Get(t *testing.T) {
	holder, _ := setupTestHolder(t)
	app := setupTestApp(&Service{holder: holder})

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var pc PublicConfig
	require.NoError(t, json.Unmarshal(body, &pc))

	assert.Equal(t, "Test Tube", pc.Instance.Name)
	assert.Equal(t, "https://video.example.com", pc.Webserver.URL)
	assert.Equal(t, "video.example.com", pc.Webserver.Hostname)
	assert.NotEmpty(t, pc.Video.Categories)
	assert.NotEmpty(t, pc.Video.Licences)
	assert.NotEmpty(t, pc.Video.Languages)
	assert.NotEmpty(t, pc.Video.Privacies)
	assert.Positive(t, pc.Pagination.CountMax)
}

func TestService_GetAbout(t *testing.T) {
	holder, _ := setupTestHolder(t)
	app := setupTestApp(&Service{holder: holder})

	req := httptest.NewRequest(http.MethodGet, Path+"/about", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var about About
	require.NoError(t, json.Unmarshal(body, &about))

	assert.Equal(t, "Test Tube", about.Instance.Name)
	assert.Equal(t, "admin@example.com", about.AdminEmail)
}

func TestService_Reload(t *testing.T) {
	holder, dir := setupTestHolder(t)
	app := setupTestApp(&Service{holder: holder})

	// Change the hostname on disk, then trigger the reload.
	changed := []byte(`
[webserver]
hostname = "moved.example.com"
port = 80
https = false

[database]
engine = "sqlite"
name = "govideohub"

[admin]
email = "admin@example.com"
`)
	err := os.WriteFile(filepath.Join(dir, "default.toml"), changed, 0o600)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, Path+"/reload", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "reloaded", out["status"])
	assert.Equal(t, "http://moved.example.com", out["url"])
}

func TestService_Reload_KeepsOldSnapshotOnFailure(t *testing.T) {
	holder, dir := setupTestHolder(t)
	app := setupTestApp(&Service{holder: holder})

	// An empty hostname fails validation, the previous snapshot must stay.
	broken := []byte(`
[webserver]
hostname = ""
port = 443
https = true

[database]
engine = "sqlite"
name = "govideohub"

[admin]
email = "admin@example.com"
`)
	err := os.WriteFile(filepath.Join(dir, "default.toml"), broken, 0o600)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, Path+"/reload", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "https://video.example.com", holder.Get().Derived.URL)
}

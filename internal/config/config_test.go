package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalConfig = `
[webserver]
hostname = "video.example.com"
port = 443
https = true

[database]
engine = "sqlite"
name = "govideohub"

[admin]
email = "admin@example.com"
`

// writeConfigDir creates a config directory with the given files.
func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	return dir
}

func TestReadConfig(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"default.toml": minimalConfig})

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Webserver.Hostname != "video.example.com" {
		t.Errorf("Webserver.Hostname = %v, want video.example.com", cfg.Webserver.Hostname)
	}

	if !cfg.Webserver.HTTPS {
		t.Error("Webserver.HTTPS should be true")
	}

	if cfg.Webserver.Port != 443 {
		t.Errorf("Webserver.Port = %v, want 443", cfg.Webserver.Port)
	}

	// defaults fill the rest of the tree
	if cfg.Instance.Name == "" {
		t.Error("Instance.Name should fall back to its default")
	}

	if cfg.Federation.MaxFollowsPerPage == 0 {
		t.Error("Federation.MaxFollowsPerPage should fall back to its default")
	}

	if len(cfg.Trans.Resolutions) == 0 {
		t.Error("Transcoding.Resolutions should fall back to its default")
	}
}

func TestReadConfigNoSource(t *testing.T) {
	_, err := ReadConfig(t.TempDir())
	if !errors.Is(err, ErrNoConfigSource) {
		t.Fatalf("ReadConfig() error = %v, want ErrNoConfigSource", err)
	}
}

func TestReadConfigProfileOverlay(t *testing.T) {
	t.Setenv(EnvProfile, "test")

	dir := writeConfigDir(t, map[string]string{
		"default.toml": minimalConfig,
		"test.toml": `
[webserver]
https = false
port = 9000
`,
	})

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Webserver.HTTPS {
		t.Error("test.toml overlay should disable https")
	}

	if cfg.Webserver.Port != 9000 {
		t.Errorf("Webserver.Port = %v, want 9000 from overlay", cfg.Webserver.Port)
	}

	if cfg.Webserver.Hostname != "video.example.com" {
		t.Errorf("Webserver.Hostname = %v, overlay must not clear base values", cfg.Webserver.Hostname)
	}
}

func TestReadConfigInstanceOverlay(t *testing.T) {
	t.Setenv(EnvProfile, "production")
	t.Setenv(EnvInstance, "2")

	dir := writeConfigDir(t, map[string]string{
		"default.toml": minimalConfig,
		"production.toml": `
[webserver]
port = 8000
`,
		"production-2.toml": `
[webserver]
port = 8002
`,
	})

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Webserver.Port != 8002 {
		t.Errorf("Webserver.Port = %v, want 8002 from instance overlay", cfg.Webserver.Port)
	}
}

func TestReadConfigLocalWins(t *testing.T) {
	t.Setenv(EnvProfile, "production")

	dir := writeConfigDir(t, map[string]string{
		"default.toml": minimalConfig,
		"production.toml": `
[signup]
enabled = false
`,
		"local.toml": `
[signup]
enabled = true
limit = 100
`,
	})

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if !cfg.Signup.Enabled {
		t.Error("local.toml should win over production.toml")
	}

	if cfg.Signup.Limit != 100 {
		t.Errorf("Signup.Limit = %v, want 100", cfg.Signup.Limit)
	}
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	jsonOverride := `{"instance":{"name":"Test Override"},"webserver":{"port":9090}}`
	t.Setenv(EnvConfigJSON, jsonOverride)

	dir := writeConfigDir(t, map[string]string{"default.toml": minimalConfig})

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Instance.Name != "Test Override" {
		t.Errorf("Instance.Name = %v, want Test Override", cfg.Instance.Name)
	}

	if cfg.Webserver.Port != 9090 {
		t.Errorf("Webserver.Port = %v, want 9090", cfg.Webserver.Port)
	}
}

func TestReadConfigBadJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, "{not json")

	dir := writeConfigDir(t, map[string]string{"default.toml": minimalConfig})

	if _, err := ReadConfig(dir); err == nil {
		t.Fatal("ReadConfig() should fail on an invalid JSON override")
	}
}

func TestOverlayFiles(t *testing.T) {
	got := overlayFiles("production", "")
	want := []string{"production.toml", "local.toml", "local-production.toml"}

	if len(got) != len(want) {
		t.Fatalf("overlayFiles() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("overlayFiles()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	withInstance := overlayFiles("test", "3")
	if withInstance[1] != "test-3.toml" {
		t.Errorf("overlayFiles() with instance = %v, want test-3.toml second", withInstance)
	}
}

func TestConfigValidation(t *testing.T) {
	valid := func() Config {
		return Config{
			Webserver: Webserver{Hostname: "example.com", Port: 443},
			DB:        DB{GormEngine: "postgres"},
			Admin:     Admin{Email: "admin@example.com"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "missing hostname",
			mutate:  func(c *Config) { c.Webserver.Hostname = "" },
			wantErr: ErrEmptyHostname,
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Webserver.Port = 0 },
			wantErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name:    "bad engine",
			mutate:  func(c *Config) { c.DB.GormEngine = "oracle" },
			wantErr: ErrUnknownDBEngine,
		},
		{
			name:    "missing admin email",
			mutate:  func(c *Config) { c.Admin.Email = "" },
			wantErr: ErrEmptyAdminEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := validate(&cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Webserver: Webserver{Hostname: "example.com", Port: 443},
		DB:        DB{GormEngine: "sqlite"},
		Admin:     Admin{Email: "admin@example.com"},
	}

	if err := validate(&cfg); err != nil {
		t.Fatalf("validate() error = %v", err)
	}

	if cfg.Webserver.ListenPort != 443 {
		t.Errorf("ListenPort = %v, should fall back to the public port", cfg.Webserver.ListenPort)
	}

	if cfg.Webserver.ShutDownTime != 5 {
		t.Errorf("ShutDownTime = %v, want default 5", cfg.Webserver.ShutDownTime)
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		DevMode: true,
		Instance: Instance{
			Name: "Test",
		},
		Webserver: Webserver{
			Hostname: "example.com",
			Port:     9000,
		},
	}

	tomlStr, err := DumpConfig(&cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if tomlStr == "" {
		t.Error("DumpConfig() returned empty string")
	}

	if !strings.Contains(tomlStr, "example.com") {
		t.Error("DumpConfig() output should contain the hostname")
	}
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{
		Instance: Instance{
			Name: "Test",
		},
		Webserver: Webserver{
			Hostname: "example.com",
			Port:     9000,
		},
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if !strings.Contains(jsonStr, "Test") {
		t.Error("DumpConfigJSON() output should contain the instance name")
	}
}

package config

import (
	"os"
)

// Environment variable names understood by the config layer.
const (
	// EnvProfile selects the runtime profile (production, development, test).
	EnvProfile = "GO_VIDEOHUB_ENV"

	// EnvInstance selects an app instance suffix, allowing several daemons
	// to share one config directory (production-1.toml, production-2.toml).
	EnvInstance = "GO_VIDEOHUB_INSTANCE"

	// EnvConfigDir overrides the configuration directory path.
	EnvConfigDir = "GO_VIDEOHUB_CONFIG_DIR"

	// EnvConfigJSON holds a JSON blob merged over the file configuration.
	EnvConfigJSON = "GO_VIDEOHUB_CONFIG_JSON"
)

// DefaultProfile is used when EnvProfile is not set.
const DefaultProfile = "production"

// Profile returns the runtime profile selected via environment.
func Profile() string {
	if p := os.Getenv(EnvProfile); p != "" {
		return p
	}

	return DefaultProfile
}

// InstanceSuffix returns the app instance suffix, empty if not running as one
// instance of many.
func InstanceSuffix() string {
	return os.Getenv(EnvInstance)
}

// Dir returns the configuration directory, honoring the override.
func Dir() string {
	if d := os.Getenv(EnvConfigDir); d != "" {
		return d
	}

	return "./etc/"
}

// IsTest reports whether the process runs under the test profile.
func IsTest() bool {
	return Profile() == "test"
}

// Package config loads the layered instance configuration from etc/*.toml files.
//
// Resolution order, later layers winning: default.toml, <profile>.toml,
// <profile>-<instance>.toml, local.toml, local-<profile>.toml, environment
// variables with the GO_VIDEOHUB_ prefix, and finally the JSON blob from
// GO_VIDEOHUB_CONFIG_JSON.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// ReadConfig from the layered config files in dir. An empty dir falls back
// to the directory selected by the environment.
func ReadConfig(dir string) (Config, error) {
	var c Config

	if dir == "" {
		dir = Dir()
	}

	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	// Read base configuration. Missing default.toml is fatal: without it
	// the instance has no hostname, no database and no admin contact.
	base, err := os.ReadFile(filepath.Join(dir, "default.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(ErrNoConfigSource, dir)
		}

		return Config{}, errors.Wrap(err, "failed to read default.toml")
	}

	if err = v.ReadConfig(bytes.NewReader(base)); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse default.toml")
	}

	// Optional overlays.
	for _, name := range overlayFiles(Profile(), InstanceSuffix()) {
		if err = mergeOptionalFile(v, filepath.Join(dir, name)); err != nil {
			return Config{}, err
		}
	}

	// Environment variables, e.g. GO_VIDEOHUB_WEBSERVER_HOSTNAME.
	v.SetEnvPrefix("GO_VIDEOHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// JSON blob override from env, the last layer.
	if raw := os.Getenv(EnvConfigJSON); raw != "" {
		if err = mergeJSON(v, raw); err != nil {
			return Config{}, err
		}
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal config")
	}

	return c, validate(&c)
}

// overlayFiles lists the optional overlay file names for the given profile
// and instance suffix, in merge order.
func overlayFiles(profile, instance string) []string {
	names := []string{profile + ".toml"}

	if instance != "" {
		names = append(names, fmt.Sprintf("%s-%s.toml", profile, instance))
	}

	names = append(names, "local.toml", "local-"+profile+".toml")

	return names
}

// mergeOptionalFile merges a single overlay file into v if it exists.
func mergeOptionalFile(v *viper.Viper, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.Wrap(err, "failed to read "+filepath.Base(path))
	}

	if err = v.MergeConfig(bytes.NewReader(b)); err != nil {
		return errors.Wrap(err, "failed to merge "+filepath.Base(path))
	}

	return nil
}

// mergeJSON merges a JSON settings blob into v.
func mergeJSON(v *viper.Viper, raw string) error {
	settings := map[string]any{}

	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	if err := v.MergeConfigMap(settings); err != nil {
		return errors.Wrap(err, "failed to merge "+EnvConfigJSON)
	}

	return nil
}

// setDefaults registers a default for every known key so AutomaticEnv can
// resolve them and Unmarshal always sees the full tree.
func setDefaults(v *viper.Viper) {
	v.SetDefault("dev_mode", false)

	v.SetDefault("webserver.https", false)
	v.SetDefault("webserver.hostname", "localhost")
	v.SetDefault("webserver.port", 9000)
	v.SetDefault("webserver.listen_port", 9000)
	v.SetDefault("webserver.shutdown_time", 5)

	v.SetDefault("database.engine", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "govideohub")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "govideohub")
	v.SetDefault("database.extras", "")
	v.SetDefault("database.ssl_mode", "disable")

	v.SetDefault("instance.name", "GoVideoHub")
	v.SetDefault("instance.short_description", "A video hosting instance")
	v.SetDefault("instance.default_page", "/videos/trending")

	v.SetDefault("admin.email", "")

	v.SetDefault("signup.enabled", false)
	v.SetDefault("signup.limit", -1)

	v.SetDefault("user.video_quota", int64(-1))
	v.SetDefault("user.video_quota_daily", int64(-1))

	v.SetDefault("transcoding.enabled", false)
	v.SetDefault("transcoding.threads", 1)
	v.SetDefault("transcoding.resolutions", []int{240, 360, 480, 720, 1080})

	v.SetDefault("federation.enabled", true)
	v.SetDefault("federation.max_follows_per_page", 10)

	v.SetDefault("log.loglevel", "info")
	v.SetDefault("log.appname", "GoVideoHub")
	v.SetDefault("log.servicename", "govideohub")
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.file.enabled", false)
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return string(out), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validEngines for the database.engine key.
var validEngines = map[string]bool{
	"mysql":    true,
	"postgres": true,
	"sqlite":   true,
}

// validate minimal config settings the daemon can not run without.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Hostname == "" {
		return errors.Wrap(ErrEmptyHostname, invalidErrMessage)
	}

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.ListenPort == 0 {
		c.Webserver.ListenPort = c.Webserver.Port
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	if !validEngines[c.DB.GormEngine] {
		return errors.Wrap(ErrUnknownDBEngine, invalidErrMessage)
	}

	if c.Admin.Email == "" {
		return errors.Wrap(ErrEmptyAdminEmail, invalidErrMessage)
	}

	return nil
}

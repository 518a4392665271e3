package config

import (
	"errors"
)

var (
	// ErrNoConfigSource is returned when no configuration file could be located at startup.
	ErrNoConfigSource = errors.New("no configuration source found, checked default.toml in the config directory")

	// ErrEmptyHostname error if config webserver.hostname is empty.
	ErrEmptyHostname = errors.New("toml config webserver.hostname can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownDBEngine error if database.engine is not one of mysql, postgres, sqlite.
	ErrUnknownDBEngine = errors.New("toml config database.engine must be mysql, postgres or sqlite")

	// ErrEmptyAdminEmail error if admin.email is empty.
	ErrEmptyAdminEmail = errors.New("toml config admin.email can not be empty")
)

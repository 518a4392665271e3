package constants

import (
	"github.com/GoVideoHub/GoVideoHub/internal/config"
)

// testMode is decided once at process start from the runtime profile.
// The builders in this package take it as a parameter so tests can build
// both variants without touching the environment.
var testMode = config.IsTest() //nolint:gochecknoglobals

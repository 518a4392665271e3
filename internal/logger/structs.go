package logger

import (
	"time"

	"github.com/DataDog/datadog-api-client-go/v2/api/datadog"
)

// Console implements a console based logger.
type Console struct {
	Enabled          bool `mapstructure:"enabled"`
	UseConsoleWriter bool `mapstructure:"use_console_writer"`
}

// LogFile implements a file based logger.
type LogFile struct {
	// Legacy non docker env file logging.
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`

	AccessLog        string `mapstructure:"access"`
	AccessMaxSize    int    `mapstructure:"access_max_size"`
	AccessMaxBackups int    `mapstructure:"access_max_backups"`
	AccessMaxAge     int    `mapstructure:"access_max_age"`

	ErrorLog        string `mapstructure:"error"`
	ErrorMaxSize    int    `mapstructure:"error_max_size"`
	ErrorMaxBackups int    `mapstructure:"error_max_backups"`
	ErrorMaxAge     int    `mapstructure:"error_max_age"`

	InfoLog        string `mapstructure:"info"`
	InfoMaxSize    int    `mapstructure:"info_max_size"`
	InfoMaxBackups int    `mapstructure:"info_max_backups"`
	InfoMaxAge     int    `mapstructure:"info_max_age"`

	WarnLog        string `mapstructure:"warn"`
	WarnMaxSize    int    `mapstructure:"warn_max_size"`
	WarnMaxBackups int    `mapstructure:"warn_max_backups"`
	WarnMaxAge     int    `mapstructure:"warn_max_age"`
}

// DataDog implements a datadog log shipping config.
type DataDog struct {
	ServiceName string                       `mapstructure:"service_name"`
	APIKey      string                       `mapstructure:"api_key"` // API Key defined at datadog
	Enabled     bool                         `mapstructure:"enabled"`
	Site        string                       `mapstructure:"site"` // Regional Site aka DD_SITE ("datadoghq.eu")
	SecretName  string                       `mapstructure:"secret_name"`
	Servers     datadog.ServerConfigurations `mapstructure:"servers"`
	Timeout     time.Duration                `mapstructure:"timeout"` // how long to wait to send a log entry to datadog.
}

// Log implements the logger config.
type Log struct {
	LogLevel string `mapstructure:"loglevel"` // trace, debug, info, warn, error.
	LogEnv   string `mapstructure:"logenv"`

	// EnableAccessLogToConsole if true the webservice starts to log access to console.
	// Does not overrule flag Console.Enabled!
	// If Console.Enabled is false, still no access log output to the console will be shown.
	EnableAccessLogToConsole bool `mapstructure:"enable_access_log_to_console"`
	ReportCaller             bool `mapstructure:"report_caller"`
	DisableCheckAlive        bool `mapstructure:"disable_check_alive"` // do not log /checkalive calls

	AppName     string `mapstructure:"appname"`
	ServiceName string `mapstructure:"servicename"`

	// Console used mainly for docker and dev.
	Console Console `mapstructure:"console"`

	// Legacy non docker env file logging.
	File LogFile `mapstructure:"file"`

	// DataDog
	DataDog DataDog `mapstructure:"datadog"`
}

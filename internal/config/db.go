package config

// DB holds the database configuration settings.
type DB struct {
	Extras     string `mapstructure:"extras"`
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	Name       string `mapstructure:"name"`
	GormEngine string `mapstructure:"engine"` // mysql, postgres or sqlite
	SSLMode    string `mapstructure:"ssl_mode"`
}

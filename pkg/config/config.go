// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

// App is the top-level application configuration.
type App struct {
	Env    string `envconfig:"APP_ENV" default:"development"`
	Server Server
	Log    Log
}

// Server holds HTTP server settings.
type Server struct {
	Host         string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port         int    `envconfig:"SERVER_PORT" default:"3000"`
	RateLimit    int    `envconfig:"SERVER_RATE_LIMIT" default:"20"`
	BodyLimitKiB int    `envconfig:"SERVER_BODY_LIMIT_KIB" default:"64"`
}

// Log holds logger settings.
type Log struct {
	Level        string `envconfig:"LOG_LEVEL" default:"info"`
	ReportCaller bool   `envconfig:"LOG_REPORT_CALLER" default:"false"`
}

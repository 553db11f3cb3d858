// Package config loads typed configuration from environment variables.
//
// Load parses `env` struct tags with caarlos0/env after loading an optional
// .env file through godotenv. Components expose their own config structs
// (httpserver.Config, pg.Config, email.Config) and main loads each of them:
//
//	app := config.MustLoad[AppConfig]()
//	srv := config.MustLoad[httpserver.Config]()
//
// Values already present in the environment take precedence over env files.
package config

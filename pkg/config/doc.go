// Package config loads typed configuration structs from the environment.
//
// Values come from process environment variables, optionally seeded from
// .env files (see DotEnvFiles) through github.com/joho/godotenv, and are
// decoded with github.com/caarlos0/env using `env` / `envDefault` tags.
// Each package in this module declares its own Config struct; the binary
// composes them into one struct and calls Load once at startup:
//
//	type AppConfig struct {
//		HTTP    httpserver.Config
//		Session session.Config
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
package config

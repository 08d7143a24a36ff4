package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// DotEnvFiles lists the files read into the process environment before the
// first Load call. Missing files are skipped and real environment variables
// always win over file values.
var DotEnvFiles = []string{".env.local", ".env"}

// Load populates v from environment variables according to its `env` and
// `envDefault` struct tags.
//
// Example:
//
//	type DatabaseConfig struct {
//		URL  string `env:"MONGODB_URL,required"`
//		Name string `env:"MONGODB_DATABASE" envDefault:"todokit"`
//	}
//
//	var cfg DatabaseConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(loadDotEnv)

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func loadDotEnv() {
	for _, name := range DotEnvFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		// godotenv.Load never overrides variables that are already set
		_ = godotenv.Load(name)
	}
}

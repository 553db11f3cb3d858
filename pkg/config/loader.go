package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvFile sync.Once

// Option configures Load.
type Option func(*options)

type options struct {
	prefix string
	files  []string
}

// WithPrefix reads every variable with prefix prepended, e.g. "CONTACT_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given files before parsing. Missing files are an error,
// unlike the default .env which is optional. Variables already set win.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.files = append(o.files, files...) }
}

// Load parses the environment into a new T using `env` and `envDefault` tags.
// The .env file in the working directory is loaded once per process when present.
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//	cfg, err := config.Load[Config]()
func Load[T any](opts ...Option) (T, error) {
	var cfg T

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	defaultEnvFile.Do(func() {
		if _, err := os.Stat(".env"); err == nil {
			_ = godotenv.Load()
		}
	})
	if len(o.files) > 0 {
		if err := godotenv.Load(o.files...); err != nil {
			return cfg, errors.Join(ErrDotenv, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: o.prefix}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad is Load that panics. Meant for main.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

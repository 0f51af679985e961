package server

import (
	"time"

	"github.com/joeshaw/envdecode"
)

// Config is the server configuration, read from the environment
type Config struct {
	Addr         string        `env:"CASINO_ADDR,default=:8000"`
	ReadTimeout  time.Duration `env:"CASINO_READ_TIMEOUT,default=15s"`
	WriteTimeout time.Duration `env:"CASINO_WRITE_TIMEOUT,default=15s"`
	IdleTimeout  time.Duration `env:"CASINO_IDLE_TIMEOUT,default=60s"`
}

// ConfigFromEnv decodes a Config from the environment, falling back
// to defaults
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// README: Config loader with env defaults for HTTP and runtime settings.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTP struct {
		Addr         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}
	Env string
}

func (c Config) Development() bool {
	return c.Env == "development"
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("CARPOOL_HTTP_ADDR", ":9091")
	cfg.HTTP.ReadTimeout = time.Duration(envOrDefaultInt("CARPOOL_HTTP_READ_TIMEOUT", 15)) * time.Second
	cfg.HTTP.WriteTimeout = time.Duration(envOrDefaultInt("CARPOOL_HTTP_WRITE_TIMEOUT", 15)) * time.Second
	cfg.Env = envOrDefault("CARPOOL_ENV", "production")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

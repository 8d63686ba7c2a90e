package env

import (
	"casino_engine/internal/config"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
)

type httpConfig struct {
	Host  string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port  string        `env:"HTTP_PORT" envDefault:"8080"`
	Read  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	Write time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.Host, cfg.Port)
}

func (cfg *httpConfig) ReadTimeout() time.Duration { return cfg.Read }

func (cfg *httpConfig) WriteTimeout() time.Duration { return cfg.Write }

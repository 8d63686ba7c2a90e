package env

import (
	"casino_engine/internal/config"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type engineConfig struct {
	Level string  `env:"LOG_LEVEL" envDefault:"info"`
	Rules string  `env:"RULES_PATH"`
	Seed  *uint64 `env:"RNG_SEED"`
}

func NewEngineConfig() (config.EngineConfig, error) {
	var cfg engineConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *engineConfig) LogLevel() string { return cfg.Level }

func (cfg *engineConfig) RulesPath() string { return cfg.Rules }

func (cfg *engineConfig) RNGSeed() *uint64 { return cfg.Seed }

type statsConfig struct {
	Window   int     `env:"STATS_WINDOW_SIZE" envDefault:"500"`
	Target   float64 `env:"STATS_TARGET_RTP" envDefault:"95"`
	Critical float64 `env:"STATS_CRITICAL_DEVIATION" envDefault:"10"`
	Every    int     `env:"STATS_CHECK_EVERY" envDefault:"25"`
}

func NewStatsConfig() (config.StatsConfig, error) {
	var cfg statsConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.Window <= 0 || cfg.Every <= 0 {
		return nil, fmt.Errorf("stats window and check period must be positive")
	}
	return &cfg, nil
}

func (cfg *statsConfig) WindowSize() int { return cfg.Window }

func (cfg *statsConfig) TargetRTP() float64 { return cfg.Target }

func (cfg *statsConfig) CriticalDeviation() float64 { return cfg.Critical }

func (cfg *statsConfig) CheckEvery() int { return cfg.Every }

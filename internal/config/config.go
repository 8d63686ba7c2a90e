package config

import (
	"casino_engine/internal/model"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// RulesConfig версионированная таблица бизнес-констант всех игр
type RulesConfig interface {
	Version() string
	Blackjack() BlackjackConfig
	Coinflip() CoinflipConfig
	Slot() SlotConfig
	Merchant() MerchantConfig
}

type BlackjackConfig interface {
	DealerStandsOn() int
	NaturalPayout() float64
	WinPayout() float64
	PushPayout() float64
	XPDivisor() float64
}

type CoinflipConfig interface {
	WinMultiplier() float64
	XPDivisor() float64
}

type SlotConfig interface {
	Symbols() []string
	Pay3Plus() []float64
	Pay2() []float64
	ScatterThreshold() int
	ScatterMultiplier() float64
	MaxLines() int
	XPDivisor() float64
}

type MerchantConfig interface {
	Band(quality string) model.MultiplierBand
	XPDivisor() float64
	MinXP() int
}

type HTTPConfig interface {
	Address() string
	ReadTimeout() time.Duration
	WriteTimeout() time.Duration
}

type EngineConfig interface {
	LogLevel() string
	RulesPath() string
	// RNGSeed nil, если источник криптостойкий
	RNGSeed() *uint64
}

type StatsConfig interface {
	WindowSize() int
	TargetRTP() float64
	CriticalDeviation() float64
	CheckEvery() int
}

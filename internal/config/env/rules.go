package env

import (
	"casino_engine/internal/config"
	"casino_engine/internal/model"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Версия встроенной таблицы правил
const defaultRulesVersion = "v1"

// Верхняя граница slot.max_lines для файла правил
const maxSlotLines = 1000

type rules struct {
	Ver string         `yaml:"version"`
	BJ  blackjackRules `yaml:"blackjack"`
	CF  coinflipRules  `yaml:"coinflip"`
	SL  slotRules      `yaml:"slot"`
	MR  merchantRules  `yaml:"merchant"`
}

type blackjackRules struct {
	StandsOn int     `yaml:"dealer_stands_on"`
	Natural  float64 `yaml:"natural_payout"`
	Win      float64 `yaml:"win_payout"`
	Push     float64 `yaml:"push_payout"`
	XP       float64 `yaml:"xp_divisor"`
}

type coinflipRules struct {
	Multiplier float64 `yaml:"win_multiplier"`
	XP         float64 `yaml:"xp_divisor"`
}

type slotSymbol struct {
	Symbol   string  `yaml:"symbol"`
	Pay3Plus float64 `yaml:"pay3plus"`
	Pay2     float64 `yaml:"pay2"`
}

type slotRules struct {
	Table       []slotSymbol `yaml:"symbols"`
	Scatter     int          `yaml:"scatter_threshold"`
	ScatterMult float64      `yaml:"scatter_multiplier"`
	Lines       int          `yaml:"max_lines"`
	XP          float64      `yaml:"xp_divisor"`

	// Параллельные массивы, собираются из Table после загрузки
	symbols  []string
	pay3Plus []float64
	pay2     []float64
}

type merchantRules struct {
	Bands   map[string][2]float64 `yaml:"bands"`
	Default string                `yaml:"default_quality"`
	XP      float64               `yaml:"xp_divisor"`
	MinExp  int                   `yaml:"min_xp"`
}

// defaultRules таблица правил по умолчанию. Каждый вызов возвращает новую копию
func defaultRules() *rules {
	return &rules{
		Ver: defaultRulesVersion,
		BJ: blackjackRules{
			StandsOn: 17,
			Natural:  2.5,
			Win:      2,
			Push:     1,
			XP:       1000,
		},
		CF: coinflipRules{
			Multiplier: 1.95,
			XP:         2000,
		},
		SL: slotRules{
			Table: []slotSymbol{
				{"DOG", 25, 2},
				{"ROCKET", 15, 1.5},
				{"STAR", 10, 1.2},
				{"SHINE", 8, 1},
				{"UFO", 6, 0.8},
				{"PAW", 4, 0.6},
				{"FIRE", 3, 0.5},
				{"GEM", 2, 0.4},
				{"BONE", 2, 0.3},
				{"PLANET", 1.5, 0.25},
				{"COMET", 1.2, 0.2},
				{"ASTEROID", 1, 0.2},
			},
			Scatter:     6,
			ScatterMult: 0.5,
			Lines:       20,
			XP:          1500,
		},
		MR: merchantRules{
			Bands: map[string][2]float64{
				"cursed":    {0.1, 0.8},
				"common":    {0.5, 1.5},
				"uncommon":  {0.7, 2.0},
				"rare":      {0.8, 3.0},
				"epic":      {1.0, 4.0},
				"legendary": {1.2, 6.0},
				"mythic":    {1.5, 8.0},
				"artifact":  {2.0, 10.0},
			},
			Default: "common",
			XP:      2500,
			MinExp:  1,
		},
	}
}

// DefaultRules встроенная таблица правил
func DefaultRules() config.RulesConfig {
	r := defaultRules()
	r.finalize()
	return r
}

// NewRulesFromYAML читает правила из YAML поверх встроенных значений.
// Пустой путь означает встроенные правила.
func NewRulesFromYAML(path string) (config.RulesConfig, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return ParseRules(data)
}

// ParseRules разбирает YAML-документ правил и валидирует результат
func ParseRules(data []byte) (config.RulesConfig, error) {
	r := defaultRules()
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	// Ключи качеств ищутся в нижнем регистре
	bands := make(map[string][2]float64, len(r.MR.Bands))
	for q, b := range r.MR.Bands {
		bands[strings.ToLower(q)] = b
	}
	r.MR.Bands = bands
	r.MR.Default = strings.ToLower(r.MR.Default)

	if err := r.validate(); err != nil {
		return nil, err
	}
	r.finalize()
	return r, nil
}

func (r *rules) validate() error {
	var errs []string
	if r.Ver == "" {
		errs = append(errs, "version is required")
	}
	if r.BJ.StandsOn < 2 || r.BJ.StandsOn > 21 {
		errs = append(errs, fmt.Sprintf("blackjack.dealer_stands_on must be in [2,21], got %d", r.BJ.StandsOn))
	}
	if r.BJ.Natural < 0 || r.BJ.Win < 0 || r.BJ.Push < 0 {
		errs = append(errs, "blackjack payouts must be non-negative")
	}
	if r.BJ.XP <= 0 {
		errs = append(errs, "blackjack.xp_divisor must be positive")
	}
	if r.CF.Multiplier < 0 {
		errs = append(errs, "coinflip.win_multiplier must be non-negative")
	}
	if r.CF.XP <= 0 {
		errs = append(errs, "coinflip.xp_divisor must be positive")
	}
	if len(r.SL.Table) == 0 {
		errs = append(errs, "slot.symbols must not be empty")
	}
	seen := make(map[string]struct{}, len(r.SL.Table))
	for i, s := range r.SL.Table {
		if s.Symbol == "" {
			errs = append(errs, fmt.Sprintf("slot.symbols[%d].symbol is required", i))
		}
		if _, dup := seen[s.Symbol]; dup {
			errs = append(errs, fmt.Sprintf("slot.symbols[%d] duplicates %q", i, s.Symbol))
		}
		seen[s.Symbol] = struct{}{}
		if s.Pay3Plus < 0 || s.Pay2 < 0 {
			errs = append(errs, fmt.Sprintf("slot.symbols[%d] payouts must be non-negative", i))
		}
	}
	if r.SL.Scatter < 1 || r.SL.Scatter > model.Reels*model.Rows {
		errs = append(errs, fmt.Sprintf("slot.scatter_threshold must be in [1,%d], got %d", model.Reels*model.Rows, r.SL.Scatter))
	}
	if r.SL.ScatterMult < 0 {
		errs = append(errs, "slot.scatter_multiplier must be non-negative")
	}
	if r.SL.Lines < 1 || r.SL.Lines > maxSlotLines {
		errs = append(errs, fmt.Sprintf("slot.max_lines must be in [1,%d], got %d", maxSlotLines, r.SL.Lines))
	}
	if r.SL.XP <= 0 {
		errs = append(errs, "slot.xp_divisor must be positive")
	}
	if len(r.MR.Bands) == 0 {
		errs = append(errs, "merchant.bands must not be empty")
	}
	for q, b := range r.MR.Bands {
		if b[0] < 0 || b[0] > b[1] {
			errs = append(errs, fmt.Sprintf("merchant.bands.%s must satisfy 0 <= min <= max", q))
		}
	}
	if _, ok := r.MR.Bands[r.MR.Default]; !ok {
		errs = append(errs, fmt.Sprintf("merchant.default_quality %q has no band", r.MR.Default))
	}
	if r.MR.XP <= 0 {
		errs = append(errs, "merchant.xp_divisor must be positive")
	}
	if r.MR.MinExp < 0 {
		errs = append(errs, "merchant.min_xp must be non-negative")
	}
	if len(errs) > 0 {
		return errors.New("invalid rules: " + strings.Join(errs, "; "))
	}
	return nil
}

func (r *rules) finalize() {
	n := len(r.SL.Table)
	r.SL.symbols = make([]string, n)
	r.SL.pay3Plus = make([]float64, n)
	r.SL.pay2 = make([]float64, n)
	for i, s := range r.SL.Table {
		r.SL.symbols[i] = s.Symbol
		r.SL.pay3Plus[i] = s.Pay3Plus
		r.SL.pay2[i] = s.Pay2
	}
}

func (r *rules) Version() string { return r.Ver }

func (r *rules) Blackjack() config.BlackjackConfig { return &r.BJ }

func (r *rules) Coinflip() config.CoinflipConfig { return &r.CF }

func (r *rules) Slot() config.SlotConfig { return &r.SL }

func (r *rules) Merchant() config.MerchantConfig { return &r.MR }

func (b *blackjackRules) DealerStandsOn() int { return b.StandsOn }

func (b *blackjackRules) NaturalPayout() float64 { return b.Natural }

func (b *blackjackRules) WinPayout() float64 { return b.Win }

func (b *blackjackRules) PushPayout() float64 { return b.Push }

func (b *blackjackRules) XPDivisor() float64 { return b.XP }

func (c *coinflipRules) WinMultiplier() float64 { return c.Multiplier }

func (c *coinflipRules) XPDivisor() float64 { return c.XP }

func (s *slotRules) Symbols() []string { return s.symbols }

func (s *slotRules) Pay3Plus() []float64 { return s.pay3Plus }

func (s *slotRules) Pay2() []float64 { return s.pay2 }

func (s *slotRules) ScatterThreshold() int { return s.Scatter }

func (s *slotRules) ScatterMultiplier() float64 { return s.ScatterMult }

func (s *slotRules) MaxLines() int { return s.Lines }

func (s *slotRules) XPDivisor() float64 { return s.XP }

// Band диапазон множителя по качеству. Неизвестное качество получает диапазон по умолчанию
func (m *merchantRules) Band(quality string) model.MultiplierBand {
	b, ok := m.Bands[strings.ToLower(quality)]
	if !ok {
		b = m.Bands[m.Default]
	}
	return model.MultiplierBand{Min: b[0], Max: b[1]}
}

func (m *merchantRules) XPDivisor() float64 { return m.XP }

func (m *merchantRules) MinXP() int { return m.MinExp }

package merchant

import (
	"casino_engine/internal/config"
	"casino_engine/internal/model"
	"casino_engine/internal/service"
	"casino_engine/pkg/money"
	"casino_engine/pkg/rng"
)

type serv struct {
	cfg config.MerchantConfig
	rnd rng.Source
}

// NewMerchantService Создать торговца, который выкупает предметы по случайной цене
func NewMerchantService(cfg config.MerchantConfig, rnd rng.Source) service.MerchantService {
	return &serv{
		cfg: cfg,
		rnd: rnd,
	}
}

// Sell продажа предмета: множитель случаен в диапазоне качества, округлен до сотых
func (s *serv) Sell(p model.MerchantPayload) (*model.MerchantOutcome, error) {
	if p.BetAmount <= 0 {
		return nil, model.MalformedInput("betAmount must be positive")
	}
	if p.Action != model.ActionSell {
		return nil, model.MalformedInput("unknown merchant action: %s", p.Action)
	}

	band := s.cfg.Band(p.Item.Quality)
	mult := money.Round2(band.Min + s.rnd.Float64()*(band.Max-band.Min))

	return &model.MerchantOutcome{
		Item:       p.Item,
		ItemIndex:  p.ItemIndex,
		Multiplier: mult,
		BetAmount:  p.BetAmount,
		Payout:     money.Mul(p.BetAmount, mult),
		Experience: max(s.cfg.MinXP(), money.FloorDiv(p.BetAmount, s.cfg.XPDivisor())),
	}, nil
}

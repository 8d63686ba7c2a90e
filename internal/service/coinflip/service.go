package coinflip

import (
	"casino_engine/internal/config"
	"casino_engine/internal/model"
	"casino_engine/internal/service"
	"casino_engine/pkg/money"
	"casino_engine/pkg/rng"
)

const (
	resultWin  = "win"
	resultLose = "lose"
)

type serv struct {
	cfg config.CoinflipConfig
	rnd rng.Source
}

func NewCoinflipService(cfg config.CoinflipConfig, rnd rng.Source) service.CoinflipService {
	return &serv{
		cfg: cfg,
		rnd: rnd,
	}
}

// Flip бросает монету: true это орел
func (s *serv) Flip(p model.CoinflipPayload) (*model.CoinflipOutcome, error) {
	if p.BetAmount <= 0 {
		return nil, model.MalformedInput("betAmount must be positive")
	}
	if p.Choice != model.Heads && p.Choice != model.Tails {
		return nil, model.MalformedInput("choice must be heads or tails, got %q", p.Choice)
	}

	side := model.Tails
	if s.rnd.Bool() {
		side = model.Heads
	}

	out := &model.CoinflipOutcome{
		CoinResult:   side,
		PlayerChoice: p.Choice,
		Result:       resultLose,
		Experience:   money.FloorDiv(p.BetAmount, s.cfg.XPDivisor()),
	}
	if side == p.Choice {
		out.Result = resultWin
		out.Payout = money.Mul(p.BetAmount, s.cfg.WinMultiplier())
	}
	return out, nil
}

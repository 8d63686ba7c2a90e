package blackjack

import (
	"casino_engine/internal/config"
	"casino_engine/internal/model"
	"casino_engine/internal/service"
	"casino_engine/pkg/money"
	"casino_engine/pkg/rng"
)

type serv struct {
	cfg config.BlackjackConfig
	rnd rng.Source
}

// NewBlackjackService Создать движок блэкджека. Состояние раунда целиком приходит в payload
func NewBlackjackService(cfg config.BlackjackConfig, rnd rng.Source) service.BlackjackService {
	return &serv{
		cfg: cfg,
		rnd: rnd,
	}
}

// Play выполняет одно действие игрока: deal, hit или stand
func (s *serv) Play(p model.BlackjackPayload) (*model.BlackjackOutcome, error) {
	if p.BetAmount <= 0 {
		return nil, model.MalformedInput("betAmount must be positive")
	}

	var (
		out *model.BlackjackOutcome
		err error
	)
	switch p.Action {
	case "", model.ActionDeal:
		out = s.Deal(p.BetAmount)
	case model.ActionHit:
		out, err = s.Hit(p)
	case model.ActionStand:
		out, err = s.Stand(p)
	default:
		return nil, model.MalformedInput("unknown blackjack action: %s", p.Action)
	}
	if err != nil {
		return nil, err
	}

	// Опыт начисляется за каждое действие
	out.Experience = money.FloorDiv(p.BetAmount, s.cfg.XPDivisor())
	return out, nil
}

// checkPlayerHand рука игрока должна быть получена на раздаче и еще не перебрана
func checkPlayerHand(action model.BlackjackAction, hand model.Hand) error {
	if hand == nil {
		return model.MalformedInput("playerHand is required for %s", action)
	}
	for _, c := range hand {
		if c.IsHidden() {
			return model.MalformedInput("playerHand must not contain hidden cards")
		}
	}
	if len(hand) < 2 {
		return model.InvalidState("%s requires a dealt hand of at least 2 cards", action)
	}
	if hand.IsBust() {
		return model.InvalidState("%s on a bust hand", action)
	}
	return nil
}

func intPtr(v int) *int { return &v }

package blackjack

import (
	"casino_engine/internal/model"
	"casino_engine/pkg/money"
)

// Stand открывает руку дилера и добирает ему карты, пока очков меньше порога
func (s *serv) Stand(p model.BlackjackPayload) (*model.BlackjackOutcome, error) {
	if err := checkPlayerHand(model.ActionStand, p.PlayerHand); err != nil {
		return nil, err
	}

	dealer := p.DealerHand.Visible()
	// Закрытая карта не хранится, поэтому на ее место тянется новая
	if len(dealer) == 0 {
		dealer = append(dealer, DealCard(s.rnd), DealCard(s.rnd))
	} else {
		dealer = append(dealer, DealCard(s.rnd))
	}
	for dealer.Score() < s.cfg.DealerStandsOn() {
		dealer = append(dealer, DealCard(s.rnd))
	}

	playerScore := p.PlayerHand.Score()
	dealerScore := dealer.Score()

	out := &model.BlackjackOutcome{
		PlayerHand:  p.PlayerHand,
		DealerHand:  dealer,
		PlayerScore: playerScore,
		DealerScore: intPtr(dealerScore),
		GameState:   model.StateFinished,
	}

	switch {
	case dealer.IsBust():
		out.Result = model.ResultDealerBust
		out.Payout = money.Mul(p.BetAmount, s.cfg.WinPayout())
	case playerScore > dealerScore:
		out.Result = model.ResultPlayerWins
		out.Payout = money.Mul(p.BetAmount, s.cfg.WinPayout())
	case dealerScore > playerScore:
		out.Result = model.ResultDealerWins
		out.Payout = 0
	default:
		out.Result = model.ResultPush
		out.Payout = money.Mul(p.BetAmount, s.cfg.PushPayout())
	}
	return out, nil
}

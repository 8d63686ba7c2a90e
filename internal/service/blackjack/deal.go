package blackjack

import (
	"casino_engine/internal/model"
	"casino_engine/pkg/money"
)

// Deal раздача: игрок, дилер, игрок, дилер.
// Блэкджек у игрока сразу завершает раунд с открытием руки дилера.
func (s *serv) Deal(bet float64) *model.BlackjackOutcome {
	var player, dealer model.Hand
	for i := 0; i < 2; i++ {
		player = append(player, DealCard(s.rnd))
		dealer = append(dealer, DealCard(s.rnd))
	}

	// Открытая карта дилера, туз показывается как 10
	upCard := min(dealer[0].Value, 10)

	out := &model.BlackjackOutcome{
		PlayerHand:   player,
		DealerHand:   model.Hand{dealer[0], model.HiddenCard()},
		PlayerScore:  player.Score(),
		DealerUpCard: intPtr(upCard),
		GameState:    model.StatePlayerTurn,
	}

	if !player.IsBlackjack() {
		return out
	}

	out.DealerHand = dealer
	out.DealerScore = intPtr(dealer.Score())
	out.GameState = model.StateFinished
	if dealer.IsBlackjack() {
		out.Result = model.ResultPush
		out.Payout = money.Mul(bet, s.cfg.PushPayout())
	} else {
		out.Result = model.ResultPlayerBlackjack
		out.Payout = money.Mul(bet, s.cfg.NaturalPayout())
	}
	return out
}

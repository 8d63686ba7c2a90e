package blackjack

import "casino_engine/internal/model"

// Hit добирает игроку одну карту. Рука дилера возвращается как пришла
func (s *serv) Hit(p model.BlackjackPayload) (*model.BlackjackOutcome, error) {
	if err := checkPlayerHand(model.ActionHit, p.PlayerHand); err != nil {
		return nil, err
	}

	player := make(model.Hand, len(p.PlayerHand), len(p.PlayerHand)+1)
	copy(player, p.PlayerHand)
	player = append(player, DealCard(s.rnd))

	out := &model.BlackjackOutcome{
		PlayerHand:  player,
		DealerHand:  p.DealerHand,
		PlayerScore: player.Score(),
		GameState:   model.StatePlayerTurn,
	}
	if player.IsBust() {
		out.GameState = model.StateFinished
		out.Result = model.ResultPlayerBust
		out.Payout = 0
	}
	return out, nil
}

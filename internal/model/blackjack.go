package model

// BlackjackAction действие игрока
type BlackjackAction string

const (
	ActionDeal  BlackjackAction = "deal"
	ActionHit   BlackjackAction = "hit"
	ActionStand BlackjackAction = "stand"
)

// BlackjackState состояние раунда
type BlackjackState string

const (
	StatePlayerTurn      BlackjackState = "player_turn"
	StatePlayerBlackjack BlackjackState = "player_blackjack"
	StateFinished        BlackjackState = "finished"
)

// BlackjackResult исход завершенного раунда
type BlackjackResult string

const (
	ResultPlayerBlackjack BlackjackResult = "player_blackjack"
	ResultPush            BlackjackResult = "push"
	ResultPlayerBust      BlackjackResult = "player_bust"
	ResultDealerBust      BlackjackResult = "dealer_bust"
	ResultPlayerWins      BlackjackResult = "player_wins"
	ResultDealerWins      BlackjackResult = "dealer_wins"
)

// BlackjackPayload руки приходят от клиента, сервер между действиями ничего не хранит.
// DealerHand == nil значит, что клиент руку дилера не прислал.
type BlackjackPayload struct {
	BetAmount  float64
	Action     BlackjackAction
	PlayerHand Hand
	DealerHand Hand
}

func (p BlackjackPayload) Game() GameType { return GameBlackjack }
func (p BlackjackPayload) Bet() float64   { return p.BetAmount }

// BlackjackOutcome исход действия. DealerScore заполняется, когда рука дилера открыта,
// DealerUpCard только на раздаче.
type BlackjackOutcome struct {
	PlayerHand   Hand
	DealerHand   Hand
	PlayerScore  int
	DealerScore  *int
	DealerUpCard *int
	GameState    BlackjackState
	Result       BlackjackResult
	Payout       float64
	Experience   int
}

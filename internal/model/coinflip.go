package model

// CoinSide сторона монеты
type CoinSide string

const (
	Heads CoinSide = "heads"
	Tails CoinSide = "tails"
)

// CoinflipPayload ставка на сторону монеты
type CoinflipPayload struct {
	BetAmount float64
	Choice    CoinSide
}

func (p CoinflipPayload) Game() GameType { return GameCoinflip }
func (p CoinflipPayload) Bet() float64   { return p.BetAmount }

// CoinflipOutcome исход броска. Result "win" или "lose"
type CoinflipOutcome struct {
	CoinResult   CoinSide
	PlayerChoice CoinSide
	Result       string
	Payout       float64
	Experience   int
}

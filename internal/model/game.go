package model

import "strings"

// GameType каноническое имя игры
type GameType string

const (
	GameBlackjack GameType = "blackjack"
	GameCoinflip  GameType = "coinflip"
	GameSlot      GameType = "slot"
	GameMerchant  GameType = "merchant"
)

// Старые имена игр из клиента принимаются наравне с каноническими
var gameTypes = map[string]GameType{
	"blackjack":  GameBlackjack,
	"coinflip":   GameCoinflip,
	"slot":       GameSlot,
	"starbound":  GameSlot,
	"merchant":   GameMerchant,
	"blacksmith": GameMerchant,
}

// ParseGameType разбирает имя игры без учета регистра
func ParseGameType(name string) (GameType, error) {
	gt, ok := gameTypes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", UnsupportedGameType(name)
	}
	return gt, nil
}

// Payload провалидированные данные одного действия игрока.
// Реализации: BlackjackPayload, CoinflipPayload, SlotPayload, MerchantPayload.
type Payload interface {
	Game() GameType
	Bet() float64
}

// PlayRequest запрос на разрешение одного действия
type PlayRequest struct {
	GameType string
	Payload  Payload
}

// GameResult итог раунда. Data содержит исход конкретной игры
// (*BlackjackOutcome, *CoinflipOutcome, *SpinOutcome, *MerchantOutcome).
type GameResult struct {
	GameType         GameType
	BetAmount        float64
	Payout           float64
	ExperienceGained int
	Data             any
}

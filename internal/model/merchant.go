package model

// MerchantAction действие у торговца. Пока есть только продажа
type MerchantAction string

const ActionSell MerchantAction = "sell"

// MerchantItem предмет из инвентаря игрока
type MerchantItem struct {
	Name    string
	Icon    string
	Quality string
}

// MultiplierBand диапазон множителя [Min, Max] для качества предмета
type MultiplierBand struct {
	Min float64
	Max float64
}

// MerchantPayload продажа предмета
type MerchantPayload struct {
	BetAmount float64
	Action    MerchantAction
	ItemIndex int
	Item      MerchantItem
}

func (p MerchantPayload) Game() GameType { return GameMerchant }
func (p MerchantPayload) Bet() float64   { return p.BetAmount }

// MerchantOutcome исход продажи
type MerchantOutcome struct {
	Item       MerchantItem
	ItemIndex  int
	Multiplier float64
	BetAmount  float64
	Payout     float64
	Experience int
}

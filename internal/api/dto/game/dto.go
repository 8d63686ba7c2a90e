package game

import "time"

// Запросы. Указатели отличают отсутствующее поле от нулевого значения

type CardRequest struct {
	Suit  *string `json:"suit"`  // Метка карты: масть + достоинство или "Hidden"
	Value *int    `json:"value"` // Очки карты (2-11, 0 для "Hidden")
}

type BlackjackRequest struct {
	BetAmount  *float64      `json:"betAmount"`  // Ставка (> 0)
	Action     *string       `json:"action"`     // deal (по умолчанию), hit, stand
	PlayerHand []CardRequest `json:"playerHand"` // Обязательна для hit и stand
	DealerHand []CardRequest `json:"dealerHand"` // Рука дилера из предыдущего ответа
}

type CoinflipRequest struct {
	BetAmount *float64 `json:"betAmount"` // Ставка (> 0)
	Choice    *string  `json:"choice"`    // heads или tails
}

type SlotRequest struct {
	BetAmount *float64 `json:"betAmount"` // Ставка (> 0)
	Lines     *int     `json:"lines"`     // Количество линий, по умолчанию 1
}

type MerchantRequest struct {
	BetAmount    *float64 `json:"betAmount"`    // Цена предложения (> 0)
	Action       *string  `json:"action"`       // sell (по умолчанию)
	ItemIndex    *int     `json:"itemIndex"`    // Позиция предмета в инвентаре
	SelectedItem *Item    `json:"selectedItem"` // Продаваемый предмет
}

type Item struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Quality string `json:"quality"`
}

// Ответы

type GameResultResponse struct {
	Success          bool    `json:"success"`
	GameType         string  `json:"gameType,omitempty"`
	BetAmount        float64 `json:"betAmount"`
	Payout           float64 `json:"payout"`
	ExperienceGained int     `json:"experienceGained"`
	Error            string  `json:"error,omitempty"`
	Data             any     `json:"data,omitempty"` // Отсутствует при ошибке
}

type Card struct {
	Suit  string `json:"suit"`
	Value int    `json:"value"`
}

type BlackjackData struct {
	PlayerHand   []Card `json:"playerHand"`
	DealerHand   []Card `json:"dealerHand,omitempty"`
	PlayerScore  int    `json:"playerScore"`
	DealerScore  *int   `json:"dealerScore,omitempty"`  // Только когда рука дилера открыта
	DealerUpCard *int   `json:"dealerUpCard,omitempty"` // Только на раздаче
	GameState    string `json:"gameState"`
	Result       string `json:"result,omitempty"`
}

type CoinflipData struct {
	CoinResult   string `json:"coinResult"`
	PlayerChoice string `json:"playerChoice"`
	Result       string `json:"result"`
}

type SlotData struct {
	Reels        [5][3]string `json:"reels"` // Символы, reels[барабан][ряд]
	Lines        int          `json:"lines"`
	WinningLines []WinEntry   `json:"winningLines"`
}

type WinEntry struct {
	Line   int     `json:"line"`   // -1 для скаттера
	Symbol string  `json:"symbol"` // Символ
	Count  int     `json:"count"`  // Длина серии или число символов на поле
	Payout float64 `json:"payout"` // Выплата
	Type   string  `json:"type"`   // pair, consecutive, scatter
}

type MerchantData struct {
	SelectedItem       Item    `json:"selectedItem"`
	ItemIndex          int     `json:"itemIndex"`
	ItemName           string  `json:"itemName"`
	ItemIcon           string  `json:"itemIcon"`
	ItemQuality        string  `json:"itemQuality"`
	MerchantMultiplier float64 `json:"merchantMultiplier"`
	BetAmount          float64 `json:"betAmount"`
	TotalPayout        float64 `json:"totalPayout"`
}

type StatsResponse struct {
	Games []GameStats `json:"games"`
}

type GameStats struct {
	GameType    string  `json:"game_type"`
	Rounds      int     `json:"rounds"`
	TotalBet    float64 `json:"total_bet"`
	TotalPayout float64 `json:"total_payout"`
	CurrentRTP  float64 `json:"current_rtp"`
	WindowRTP   float64 `json:"window_rtp"`
	WindowSize  int     `json:"window_size"`
	TargetRTP   float64 `json:"target_rtp"`
	Alert       bool    `json:"alert"`

	AlertDirection string       `json:"alert_direction,omitempty"`
	Alerts         []StatsAlert `json:"alerts"`
}

type StatsAlert struct {
	Timestamp time.Time `json:"timestamp"`
	Direction string    `json:"direction"`
	WindowRTP float64   `json:"window_rtp"`
	Profit    float64   `json:"profit"`
}

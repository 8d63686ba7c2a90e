package model

import "time"

// Состояние одной игры
type GameState struct {
	TotalRounds int     // Сколько всего раундов сыграно
	TotalBet    float64 // Сумма всех ставок
	TotalPayout float64 // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPayout/TotalBet)*100

	Alerts []AlertLog // Лог отклонений RTP

	Alert          bool   // RTP в окне вышел за критическое отклонение
	AlertDirection string // "high" или "low"

	RoundWindow []RoundResult // Окно последних раундов для анализа
	WindowRTP   float64       // RTP в окне последних раундов
}

// Лог отклонений RTP
type AlertLog struct {
	Timestamp time.Time
	Direction string
	WindowRTP float64
	Profit    float64
}

// Результат раунда для окна
type RoundResult struct {
	Bet    float64
	Payout float64
}

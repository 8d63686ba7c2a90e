package model

import "time"

// RTPStats накопленная статистика возврата по одной игре
type RTPStats struct {
	GameType       GameType
	Rounds         int
	TotalBet       float64
	TotalPayout    float64
	CurrentRTP     float64
	WindowRTP      float64
	WindowSize     int
	TargetRTP      float64
	Alert          bool
	AlertDirection string
	Alerts         []RTPAlert
}

// RTPAlert запись о выходе RTP в окне за критическое отклонение
type RTPAlert struct {
	Timestamp time.Time
	Direction string
	WindowRTP float64
	Profit    float64
}

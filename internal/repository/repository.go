package repository

import "casino_engine/internal/model"

// StatsRepository статистика возврата по играм в памяти процесса
type StatsRepository interface {
	UpdateState(game model.GameType, bet, payout float64)
	Snapshot() []model.RTPStats
}

package stats_repo

import (
	"casino_engine/internal/config"
	"casino_engine/internal/model"
	repoModel "casino_engine/internal/repository/stats_repo/model"
	"math"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// maxAlertLog сколько последних отклонений хранится по каждой игре
const maxAlertLog = 100

// StateRepo Реализация репозитория для хранения статистики игр
type StateRepo struct {
	mtx    sync.RWMutex
	cfg    config.StatsConfig
	logger *zap.Logger
	states map[model.GameType]*repoModel.GameState
}

// NewStatsRepository Конструктор репозитория с пустой статистикой
func NewStatsRepository(cfg config.StatsConfig, logger *zap.Logger) *StateRepo {
	return &StateRepo{
		cfg:    cfg,
		logger: logger,
		states: make(map[model.GameType]*repoModel.GameState),
	}
}

// UpdateState Обновление статистики после раунда.
// Для действий без новой ставки (hit, stand) bet равен нулю.
func (r *StateRepo) UpdateState(game model.GameType, bet, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	state, ok := r.states[game]
	if !ok {
		state = &repoModel.GameState{}
		r.states[game] = state
	}

	state.TotalRounds++
	state.TotalBet += bet
	state.TotalPayout += payout
	if state.TotalBet > 0 {
		state.CurrentRTP = state.TotalPayout / state.TotalBet * 100
	}

	// Добавляем раунд в окно
	state.RoundWindow = append(state.RoundWindow, repoModel.RoundResult{
		Bet:    bet,
		Payout: payout,
	})

	// Поддерживаем размер окна
	if len(state.RoundWindow) > r.cfg.WindowSize() {
		state.RoundWindow = state.RoundWindow[len(state.RoundWindow)-r.cfg.WindowSize():]
	}

	// Пересчитываем RTP в окне
	var windowBet, windowPayout float64
	for _, round := range state.RoundWindow {
		windowBet += round.Bet
		windowPayout += round.Payout
	}
	if windowBet > 0 {
		state.WindowRTP = windowPayout / windowBet * 100
	} else {
		state.WindowRTP = 0
	}

	if state.TotalRounds%r.cfg.CheckEvery() == 0 {
		r.deviationCheck(game, state)
	}
}

// deviationCheck Проверка отклонения RTP в окне от целевого.
// Выплаты не меняются, отклонение только логируется и отдается в статистике.
func (r *StateRepo) deviationCheck(game model.GameType, state *repoModel.GameState) {
	// Пока окно не заполнено, RTP в нем слишком шумный
	if len(state.RoundWindow) < r.cfg.WindowSize() {
		return
	}
	target := r.cfg.TargetRTP()
	critical := r.cfg.CriticalDeviation()
	absoluteDiff := math.Abs(state.WindowRTP - target)

	if absoluteDiff > critical {
		direction := "low"
		if state.WindowRTP > target {
			direction = "high"
		}
		if state.Alert && state.AlertDirection == direction {
			return
		}
		state.Alert = true
		state.AlertDirection = direction
		state.Alerts = append(state.Alerts, repoModel.AlertLog{
			Timestamp: time.Now(),
			Direction: direction,
			WindowRTP: state.WindowRTP,
			Profit:    state.TotalBet - state.TotalPayout,
		})
		if len(state.Alerts) > maxAlertLog {
			state.Alerts = state.Alerts[len(state.Alerts)-maxAlertLog:]
		}
		r.logger.Warn("rtp deviation",
			zap.String("game", string(game)),
			zap.String("direction", direction),
			zap.Float64("window_rtp", state.WindowRTP),
			zap.Float64("target_rtp", target),
		)
		return
	}

	// Выходим из режима тревоги, когда RTP вернулся ближе к целевому
	if state.Alert && absoluteDiff < critical/2 {
		state.Alert = false
		state.AlertDirection = ""
		r.logger.Info("rtp back to normal",
			zap.String("game", string(game)),
			zap.Float64("window_rtp", state.WindowRTP),
		)
	}
}

// Snapshot копия статистики всех игр, отсортированная по имени игры
func (r *StateRepo) Snapshot() []model.RTPStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]model.RTPStats, 0, len(r.states))
	for game, state := range r.states {
		alerts := make([]model.RTPAlert, len(state.Alerts))
		for i, a := range state.Alerts {
			alerts[i] = model.RTPAlert{
				Timestamp: a.Timestamp,
				Direction: a.Direction,
				WindowRTP: a.WindowRTP,
				Profit:    a.Profit,
			}
		}
		out = append(out, model.RTPStats{
			GameType:    game,
			Rounds:      state.TotalRounds,
			TotalBet:    state.TotalBet,
			TotalPayout: state.TotalPayout,
			CurrentRTP:  state.CurrentRTP,
			WindowRTP:   state.WindowRTP,
			WindowSize:  len(state.RoundWindow),
			TargetRTP:   r.cfg.TargetRTP(),
			Alert:       state.Alert,

			AlertDirection: state.AlertDirection,
			Alerts:         alerts,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GameType < out[j].GameType })
	return out
}

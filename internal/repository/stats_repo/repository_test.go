package stats_repo

import (
	"math"
	"sync"
	"testing"

	"casino_engine/internal/model"
	"casino_engine/pkg/logger"
)

type statsCfg struct {
	window, every int
	target, crit  float64
}

func (c statsCfg) WindowSize() int            { return c.window }
func (c statsCfg) TargetRTP() float64         { return c.target }
func (c statsCfg) CriticalDeviation() float64 { return c.crit }
func (c statsCfg) CheckEvery() int            { return c.every }

func newRepo(window, every int) *StateRepo {
	return NewStatsRepository(statsCfg{window: window, every: every, target: 95, crit: 10}, logger.NewNop())
}

// gameStats статистика одной игры из снимка
func gameStats(t *testing.T, r *StateRepo, game model.GameType) model.RTPStats {
	t.Helper()
	for _, s := range r.Snapshot() {
		if s.GameType == game {
			return s
		}
	}
	t.Fatalf("no stats for %s", game)
	return model.RTPStats{}
}

func TestUpdateState(t *testing.T) {
	r := newRepo(10, 5)
	r.UpdateState(model.GameCoinflip, 100, 195)
	r.UpdateState(model.GameCoinflip, 100, 0)

	stats := r.Snapshot()
	if len(stats) != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	s := stats[0]
	if s.GameType != model.GameCoinflip || s.Rounds != 2 || s.TotalBet != 200 || s.TotalPayout != 195 {
		t.Fatalf("stats = %+v", s)
	}
	if math.Abs(s.CurrentRTP-97.5) > 1e-9 || math.Abs(s.WindowRTP-97.5) > 1e-9 {
		t.Fatalf("rtp = %v / %v", s.CurrentRTP, s.WindowRTP)
	}
}

// TestWindowSlides ensures only the last WindowSize rounds count toward the window RTP.
func TestWindowSlides(t *testing.T) {
	r := newRepo(2, 100)
	r.UpdateState(model.GameSlot, 100, 1000)
	r.UpdateState(model.GameSlot, 100, 50)
	r.UpdateState(model.GameSlot, 100, 100)

	state := gameStats(t, r, model.GameSlot)
	if state.WindowSize != 2 {
		t.Fatalf("window = %d", state.WindowSize)
	}
	if state.WindowRTP != 75 {
		t.Fatalf("window rtp = %v, want 75", state.WindowRTP)
	}
}

// TestZeroBetRounds ensures follow-up actions add payout without inflating the stake.
func TestZeroBetRounds(t *testing.T) {
	r := newRepo(10, 100)
	r.UpdateState(model.GameBlackjack, 100, 0)
	r.UpdateState(model.GameBlackjack, 0, 200)

	state := gameStats(t, r, model.GameBlackjack)
	if state.TotalBet != 100 || state.CurrentRTP != 200 {
		t.Fatalf("state = %+v", state)
	}
}

func TestDeviationAlert(t *testing.T) {
	r := newRepo(4, 2)
	for i := 0; i < 4; i++ {
		r.UpdateState(model.GameMerchant, 100, 300)
	}
	state := gameStats(t, r, model.GameMerchant)
	if !state.Alert || state.AlertDirection != "high" || len(state.Alerts) != 1 {
		t.Fatalf("expected high alert, got %+v", state)
	}
	if a := state.Alerts[0]; a.Direction != "high" || a.WindowRTP != 300 || a.Profit != -800 || a.Timestamp.IsZero() {
		t.Fatalf("alert = %+v", a)
	}

	// Дальнейшие раунды в том же направлении не дублируют запись
	r.UpdateState(model.GameMerchant, 100, 300)
	r.UpdateState(model.GameMerchant, 100, 300)
	state = gameStats(t, r, model.GameMerchant)
	if len(state.Alerts) != 1 {
		t.Fatalf("alerts = %d", len(state.Alerts))
	}

	// Окно возвращается к целевому RTP
	for i := 0; i < 4; i++ {
		r.UpdateState(model.GameMerchant, 100, 95)
	}
	state = gameStats(t, r, model.GameMerchant)
	if state.Alert || state.AlertDirection != "" {
		t.Fatalf("alert should clear, window rtp = %v", state.WindowRTP)
	}
	// История отклонений остается в снимке
	if len(state.Alerts) != 1 {
		t.Fatalf("alerts = %d", len(state.Alerts))
	}
}

func TestNoAlertBeforeWindowFills(t *testing.T) {
	r := newRepo(100, 1)
	for i := 0; i < 10; i++ {
		r.UpdateState(model.GameCoinflip, 100, 0)
	}
	state := gameStats(t, r, model.GameCoinflip)
	if state.Alert {
		t.Fatal("alert raised on a partial window")
	}
}

func TestSnapshotSorted(t *testing.T) {
	r := newRepo(10, 10)
	r.UpdateState(model.GameSlot, 1, 1)
	r.UpdateState(model.GameBlackjack, 1, 1)
	r.UpdateState(model.GameMerchant, 1, 1)

	stats := r.Snapshot()
	if stats[0].GameType != model.GameBlackjack || stats[1].GameType != model.GameMerchant || stats[2].GameType != model.GameSlot {
		t.Fatalf("order = %v, %v, %v", stats[0].GameType, stats[1].GameType, stats[2].GameType)
	}
}

func TestConcurrentUpdates(t *testing.T) {
	r := newRepo(50, 5)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				r.UpdateState(model.GameCoinflip, 10, 9.5)
				_ = r.Snapshot()
			}
		}()
	}
	wg.Wait()
	if s := r.Snapshot()[0]; s.Rounds != 4000 {
		t.Fatalf("rounds = %d", s.Rounds)
	}
}

package slot

import (
	"errors"
	"math"
	"testing"

	"casino_engine/internal/config/env"
	"casino_engine/internal/model"
	"casino_engine/pkg/money"
	"casino_engine/pkg/rng"
)

func newTestServ(ints ...int) *serv {
	return NewSlotService(env.DefaultRules().Slot(), rng.NewScripted(rng.Script{Ints: ints})).(*serv)
}

// baseBoard поле без выигрышей: каждый символ встречается не больше двух раз
func baseBoard(s *serv) model.Board {
	symbols := s.cfg.Symbols()
	var b model.Board
	for r := 0; r < model.Reels; r++ {
		for row := 0; row < model.Rows; row++ {
			b[r][row] = symbols[(r*model.Rows+row)%len(symbols)]
		}
	}
	return b
}

func TestLineRow(t *testing.T) {
	want := [][]int{
		{0, 1, 2, 0, 1},
		{1, 2, 0, 1, 2},
		{2, 0, 1, 2, 0},
		{0, 1, 2, 0, 1},
	}
	for line, rows := range want {
		for reel, row := range rows {
			if got := LineRow(line, reel); got != row {
				t.Fatalf("LineRow(%d, %d) = %d, want %d", line, reel, got, row)
			}
		}
	}
}

func TestBaseBoardHasNoWins(t *testing.T) {
	s := newTestServ()
	b := baseBoard(s)
	if wins := s.EvaluateLines(b, 100, 3); len(wins) != 0 {
		t.Fatalf("unexpected line wins: %+v", wins)
	}
	if wins := s.EvaluateScatter(b, 100); len(wins) != 0 {
		t.Fatalf("unexpected scatter wins: %+v", wins)
	}
}

func TestEvaluateLinesPair(t *testing.T) {
	s := newTestServ()
	b := baseBoard(s)
	b[1][1] = "DOG"

	wins := s.EvaluateLines(b, 100, 1)
	if len(wins) != 1 {
		t.Fatalf("wins = %+v", wins)
	}
	w := wins[0]
	if w.Line != 0 || w.Symbol != "DOG" || w.Count != 2 || w.Kind != model.WinPair || w.Payout != 200 {
		t.Fatalf("win = %+v", w)
	}
}

// TestEvaluateLinesRepeatedPattern ensures a line past the third repeats an earlier pattern and pays again.
func TestEvaluateLinesRepeatedPattern(t *testing.T) {
	s := newTestServ()
	b := baseBoard(s)
	b[1][1] = "DOG"

	wins := s.EvaluateLines(b, 100, 4)
	if len(wins) != 2 {
		t.Fatalf("wins = %+v", wins)
	}
	if wins[0].Line != 0 || wins[1].Line != 3 {
		t.Fatalf("lines = %d, %d", wins[0].Line, wins[1].Line)
	}
	for _, w := range wins {
		if w.Payout != 50 {
			t.Fatalf("payout = %v, want 50", w.Payout)
		}
	}
}

func TestEvaluateLinesConsecutive(t *testing.T) {
	s := newTestServ()
	b := baseBoard(s)
	// Линия 1 читает ряды 1,2,0,1,2
	b[0][1], b[1][2], b[2][0], b[3][1] = "STAR", "STAR", "STAR", "STAR"
	b[4][2] = "GEM"

	wins := s.EvaluateLines(b, 100, 4)
	if len(wins) != 1 {
		t.Fatalf("wins = %+v", wins)
	}
	w := wins[0]
	// (100 / 4) * 10 * (4 - 2)
	if w.Line != 1 || w.Symbol != "STAR" || w.Count != 4 || w.Kind != model.WinConsecutive || w.Payout != 500 {
		t.Fatalf("win = %+v", w)
	}
}

// TestEvaluateLinesRunOfThree ensures a run of exactly three pays the 3+ table once.
func TestEvaluateLinesRunOfThree(t *testing.T) {
	s := newTestServ()
	b := baseBoard(s)
	// Линия 0 читает ряды 0,1,2,0,1; на четвертом барабане остается PLANET
	b[0][0], b[1][1], b[2][2] = "ROCKET", "ROCKET", "ROCKET"

	wins := s.EvaluateLines(b, 100, 2)
	if len(wins) != 1 {
		t.Fatalf("wins = %+v", wins)
	}
	w := wins[0]
	want := money.PerLine(100, 2, s.cfg.Pay3Plus()[1], 1)
	// (100 / 2) * 15 * (3 - 2)
	if want != 750 {
		t.Fatalf("want = %v", want)
	}
	if w.Line != 0 || w.Symbol != "ROCKET" || w.Count != 3 || w.Kind != model.WinConsecutive || w.Payout != want {
		t.Fatalf("win = %+v", w)
	}
}

// TestEvaluateLinesLeftAnchored ensures a run that does not start on the first reel pays nothing.
func TestEvaluateLinesLeftAnchored(t *testing.T) {
	s := newTestServ()
	b := baseBoard(s)
	b[1][1], b[2][2], b[3][0], b[4][1] = "GEM", "GEM", "GEM", "GEM"

	if wins := s.EvaluateLines(b, 100, 1); len(wins) != 0 {
		t.Fatalf("wins = %+v", wins)
	}
}

func TestEvaluateScatter(t *testing.T) {
	s := newTestServ()
	b := baseBoard(s)
	b[1][0], b[1][1] = "PAW", "PAW"
	b[2][0], b[2][1] = "PAW", "PAW"
	b[3][0], b[3][2] = "PAW", "PAW"

	if wins := s.EvaluateLines(b, 100, 1); len(wins) != 0 {
		t.Fatalf("line wins = %+v", wins)
	}
	wins := s.EvaluateScatter(b, 100)
	if len(wins) != 1 {
		t.Fatalf("scatter wins = %+v", wins)
	}
	w := wins[0]
	// 100 * 0.5 * (7 - 5)
	if w.Line != model.ScatterLine || w.Symbol != "PAW" || w.Count != 7 || w.Kind != model.WinScatter || w.Payout != 100 {
		t.Fatalf("win = %+v", w)
	}
}

// TestSpinFullBoard ensures a board of one symbol pays every line and the scatter.
func TestSpinFullBoard(t *testing.T) {
	tests := []struct {
		lines int
		want  float64
	}{
		// 3000 * 25 * 3 + 3000 * 0.5 * 10
		{1, 240000},
		// 3 * (1000 * 25 * 3) + 15000
		{3, 240000},
		// 5 * (600 * 25 * 3) + 15000
		{5, 240000},
	}
	for _, tt := range tests {
		s := newTestServ(make([]int, 15)...)
		out, err := s.Spin(model.SlotPayload{BetAmount: 3000, Lines: tt.lines})
		if err != nil {
			t.Fatalf("Spin: %v", err)
		}
		if out.Payout != tt.want {
			t.Fatalf("lines=%d payout = %v, want %v", tt.lines, out.Payout, tt.want)
		}
		if len(out.WinningLines) != tt.lines+1 {
			t.Fatalf("lines=%d entries = %d", tt.lines, len(out.WinningLines))
		}
		if out.Experience != 2 || out.Lines != tt.lines {
			t.Fatalf("experience = %d, lines = %d", out.Experience, out.Lines)
		}
	}
}

// TestSpinDrawOrder ensures the grid is filled reel by reel, top to bottom.
func TestSpinDrawOrder(t *testing.T) {
	ints := make([]int, 15)
	for i := range ints {
		ints[i] = i % 12
	}
	s := newTestServ(ints...)
	out, err := s.Spin(model.SlotPayload{BetAmount: 100, Lines: 1})
	if err != nil {
		t.Fatalf("Spin: %v", err)
	}
	if out.Board != baseBoard(s) {
		t.Fatalf("board = %v", out.Board)
	}
	if out.Payout != 0 || len(out.WinningLines) != 0 {
		t.Fatalf("unexpected wins: %+v", out.WinningLines)
	}
}

func TestSpinErrors(t *testing.T) {
	s := newTestServ()
	if _, err := s.Spin(model.SlotPayload{BetAmount: 0, Lines: 1}); !errors.Is(err, model.ErrMalformedInput) {
		t.Fatalf("zero bet err = %v", err)
	}
	if _, err := s.Spin(model.SlotPayload{BetAmount: 10, Lines: 0}); !errors.Is(err, model.ErrMalformedInput) {
		t.Fatalf("zero lines err = %v", err)
	}
	if _, err := s.Spin(model.SlotPayload{BetAmount: 10, Lines: 21}); !errors.Is(err, model.ErrMalformedInput) {
		t.Fatalf("too many lines err = %v", err)
	}
	if _, err := s.Spin(model.SlotPayload{BetAmount: 10, Lines: 20_000_000}); !errors.Is(err, model.ErrMalformedInput) {
		t.Fatalf("huge lines err = %v", err)
	}
}

// TestSpinMaxLines ensures the configured line limit itself is playable.
func TestSpinMaxLines(t *testing.T) {
	s := newTestServ(make([]int, 15)...)
	out, err := s.Spin(model.SlotPayload{BetAmount: 2000, Lines: s.cfg.MaxLines()})
	if err != nil {
		t.Fatalf("Spin: %v", err)
	}
	if out.Lines != 20 || len(out.WinningLines) != 21 {
		t.Fatalf("lines = %d, entries = %d", out.Lines, len(out.WinningLines))
	}
}

// TestSpinInvariants ensures the total equals the sum of entries and every entry is well formed.
func TestSpinInvariants(t *testing.T) {
	s := NewSlotService(env.DefaultRules().Slot(), rng.NewSeeded(99)).(*serv)
	alphabet := make(map[string]bool)
	for _, sym := range s.cfg.Symbols() {
		alphabet[sym] = true
	}
	for i := 0; i < 5000; i++ {
		out, err := s.Spin(model.SlotPayload{BetAmount: 150, Lines: 1 + i%7})
		if err != nil {
			t.Fatalf("Spin: %v", err)
		}
		for _, reel := range out.Board {
			for _, sym := range reel {
				if !alphabet[sym] {
					t.Fatalf("symbol %q outside alphabet", sym)
				}
			}
		}
		var sum float64
		for _, w := range out.WinningLines {
			sum = money.Sum(sum, w.Payout)
			switch w.Kind {
			case model.WinPair:
				if w.Count != 2 || w.Line < 0 {
					t.Fatalf("bad pair: %+v", w)
				}
			case model.WinConsecutive:
				if w.Count < 3 || w.Count > 5 || w.Line < 0 {
					t.Fatalf("bad run: %+v", w)
				}
			case model.WinScatter:
				if w.Count < 6 || w.Line != model.ScatterLine {
					t.Fatalf("bad scatter: %+v", w)
				}
			}
		}
		if math.Abs(sum-out.Payout) > 1e-9 {
			t.Fatalf("payout %v != sum %v", out.Payout, sum)
		}
	}
}

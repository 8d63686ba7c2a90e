package slot

import (
	"casino_engine/internal/model"
	"casino_engine/pkg/money"
)

const (
	// Минимальная серия для выигрыша по таблице "3+"
	minConsecutive = 3
	// Серия, которая платит по таблице пар
	pairCount = 2
)

// Spin выполняет спин: генерация поля, оценка линий, скаттер
func (s *serv) Spin(p model.SlotPayload) (*model.SpinOutcome, error) {
	if p.BetAmount <= 0 {
		return nil, model.MalformedInput("betAmount must be positive")
	}
	lines := p.Lines
	if lines < 1 {
		return nil, model.MalformedInput("lines must be at least 1, got %d", p.Lines)
	}
	if limit := s.cfg.MaxLines(); lines > limit {
		return nil, model.MalformedInput("lines must be at most %d, got %d", limit, p.Lines)
	}

	board := s.GenerateBoard()

	wins := s.EvaluateLines(board, p.BetAmount, lines)
	wins = append(wins, s.EvaluateScatter(board, p.BetAmount)...)

	payouts := make([]float64, len(wins))
	for i, w := range wins {
		payouts[i] = w.Payout
	}

	return &model.SpinOutcome{
		Board:        board,
		Lines:        lines,
		WinningLines: wins,
		Payout:       money.Sum(payouts...),
		Experience:   money.FloorDiv(p.BetAmount, s.cfg.XPDivisor()),
	}, nil
}

// GenerateBoard генерирует игровое поле 5x3, барабан за барабаном, сверху вниз.
// Все символы равновероятны.
func (s *serv) GenerateBoard() model.Board {
	symbols := s.cfg.Symbols()
	var board model.Board
	for r := 0; r < model.Reels; r++ {
		for row := 0; row < model.Rows; row++ {
			board[r][row] = symbols[s.rnd.IntN(len(symbols))]
		}
	}
	return board
}

// LineRow ряд, который линия line читает на барабане reel
func LineRow(line, reel int) int {
	return (line + reel) % model.Rows
}

// EvaluateLines выполняет оценку выигрышных линий.
// Линии после третьей повторяют рисунок первых трех и оцениваются отдельно.
func (s *serv) EvaluateLines(board model.Board, bet float64, lines int) []model.WinEntry {
	// Массив для хранения выигрышных линий
	var wins []model.WinEntry

	for i := 0; i < lines; i++ {
		first := board[0][LineRow(i, 0)]

		// Считаем серию одинаковых символов с первого барабана
		count := 1
		for r := 1; r < model.Reels; r++ {
			if board[r][LineRow(i, r)] != first {
				break
			}
			count++
		}

		idx := s.symbolIndex(first)
		if idx < 0 {
			continue
		}

		switch {
		case count >= minConsecutive:
			wins = append(wins, model.WinEntry{
				Line:   i,
				Symbol: first,
				Count:  count,
				Payout: money.PerLine(bet, lines, s.cfg.Pay3Plus()[idx], float64(count-pairCount)),
				Kind:   model.WinConsecutive,
			})
		case count == pairCount:
			wins = append(wins, model.WinEntry{
				Line:   i,
				Symbol: first,
				Count:  count,
				Payout: money.PerLine(bet, lines, s.cfg.Pay2()[idx]),
				Kind:   model.WinPair,
			})
		}
	}
	return wins
}

// EvaluateScatter платит за символ, который встретился на поле не меньше порога раз.
// Символы проверяются в порядке алфавита слота.
func (s *serv) EvaluateScatter(board model.Board, bet float64) []model.WinEntry {
	counts := make(map[string]int)
	for r := 0; r < model.Reels; r++ {
		for row := 0; row < model.Rows; row++ {
			counts[board[r][row]]++
		}
	}

	threshold := s.cfg.ScatterThreshold()
	var wins []model.WinEntry
	for _, sym := range s.cfg.Symbols() {
		count := counts[sym]
		if count < threshold {
			continue
		}
		wins = append(wins, model.WinEntry{
			Line:   model.ScatterLine,
			Symbol: sym,
			Count:  count,
			Payout: money.Mul(bet, s.cfg.ScatterMultiplier(), float64(count-threshold+1)),
			Kind:   model.WinScatter,
		})
	}
	return wins
}

// symbolIndex индекс символа в таблицах выплат, -1 для неизвестного
func (s *serv) symbolIndex(sym string) int {
	for i, v := range s.cfg.Symbols() {
		if v == sym {
			return i
		}
	}
	return -1
}

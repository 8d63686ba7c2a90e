package model

const (
	// Барабаны
	Reels = 5
	// Ряды
	Rows = 3
)

// Board игровое поле: Board[reel][row]
type Board [Reels][Rows]string

// WinKind тип выигрыша
type WinKind string

const (
	WinPair        WinKind = "pair"
	WinConsecutive WinKind = "consecutive"
	WinScatter     WinKind = "scatter"
)

// ScatterLine номер линии для выигрыша по скаттеру
const ScatterLine = -1

// SlotPayload ставка на спин. Lines количество активных линий (>= 1)
type SlotPayload struct {
	BetAmount float64
	Lines     int
}

func (p SlotPayload) Game() GameType { return GameSlot }
func (p SlotPayload) Bet() float64   { return p.BetAmount }

// WinEntry выигрыш по линии или скаттеру
type WinEntry struct {
	Line   int
	Symbol string
	Count  int
	Payout float64
	Kind   WinKind
}

// SpinOutcome исход спина
type SpinOutcome struct {
	Board        Board
	Lines        int
	WinningLines []WinEntry
	Payout       float64
	Experience   int
}

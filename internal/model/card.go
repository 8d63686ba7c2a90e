package model

// HiddenLabel метка закрытой карты дилера
const HiddenLabel = "Hidden"

const (
	blackjack = 21
	aceValue  = 11
)

var (
	// Suits масти бесконечной колоды
	Suits = [4]string{"♠", "♥", "♦", "♣"}
	// Ranks достоинства, индекс совпадает с RankValues
	Ranks = [13]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	// RankValues очки каждого достоинства. Туз всегда хранится как 11
	RankValues = [13]int{11, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10}
)

// Card карта: метка (масть + достоинство) и очки
type Card struct {
	Label string
	Value int
}

// NewCard собирает карту по индексам масти и достоинства
func NewCard(suit, rank int) Card {
	return Card{Label: Suits[suit] + Ranks[rank], Value: RankValues[rank]}
}

// HiddenCard заглушка закрытой карты дилера
func HiddenCard() Card {
	return Card{Label: HiddenLabel, Value: 0}
}

func (c Card) IsHidden() bool { return c.Label == HiddenLabel }

func (c Card) IsAce() bool { return c.Value == aceValue }

// Hand упорядоченный набор карт
type Hand []Card

// Score очки руки. Пока сумма больше 21 и есть тузы, каждый туз по очереди считается за 1.
// Сами карты не меняются.
func (h Hand) Score() int {
	score, aces := 0, 0
	for _, c := range h {
		score += c.Value
		if c.IsAce() {
			aces++
		}
	}
	for score > blackjack && aces > 0 {
		score -= 10
		aces--
	}
	return score
}

// Visible рука без закрытых карт
func (h Hand) Visible() Hand {
	visible := make(Hand, 0, len(h))
	for _, c := range h {
		if !c.IsHidden() {
			visible = append(visible, c)
		}
	}
	return visible
}

// IsBust перебор
func (h Hand) IsBust() bool { return h.Score() > blackjack }

// IsBlackjack ровно 21 очко
func (h Hand) IsBlackjack() bool { return h.Score() == blackjack }

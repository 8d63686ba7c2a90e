package blackjack

import (
	"casino_engine/internal/model"
	"casino_engine/pkg/rng"
)

// DealCard тянет карту из бесконечной колоды: сначала масть, потом достоинство
func DealCard(rnd rng.Source) model.Card {
	suit := rnd.IntN(len(model.Suits))
	rank := rnd.IntN(len(model.Ranks))
	return model.NewCard(suit, rank)
}

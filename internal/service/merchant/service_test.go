package merchant

import (
	"errors"
	"math"
	"testing"

	"casino_engine/internal/config/env"
	"casino_engine/internal/model"
	"casino_engine/pkg/rng"
)

func newServ(src rng.Source) *serv {
	return NewMerchantService(env.DefaultRules().Merchant(), src).(*serv)
}

func sell(bet float64, quality string) model.MerchantPayload {
	return model.MerchantPayload{
		BetAmount: bet,
		Action:    model.ActionSell,
		ItemIndex: 2,
		Item:      model.MerchantItem{Name: "Sword", Icon: "🗡", Quality: quality},
	}
}

// TestSellLegendary ensures the roll maps into the band and rounds to two decimals.
func TestSellLegendary(t *testing.T) {
	// 1.2 + 0.4354 * 4.8 = 3.28992 -> 3.29
	s := newServ(rng.NewScripted(rng.Script{Floats: []float64{0.4354}}))
	out, err := s.Sell(sell(1000, "legendary"))
	if err != nil {
		t.Fatalf("Sell: %v", err)
	}
	if out.Multiplier != 3.29 {
		t.Fatalf("multiplier = %v, want 3.29", out.Multiplier)
	}
	if out.Payout != 3290 {
		t.Fatalf("payout = %v, want 3290", out.Payout)
	}
	if out.Experience != 1 {
		t.Fatalf("experience = %d, want 1", out.Experience)
	}
	if out.ItemIndex != 2 || out.Item.Name != "Sword" || out.BetAmount != 1000 {
		t.Fatalf("item echo = %+v", out)
	}
}

func TestSellBandEdges(t *testing.T) {
	tests := []struct {
		name    string
		quality string
		roll    float64
		want    float64
	}{
		{"cursed floor", "cursed", 0, 0.1},
		{"artifact near top", "artifact", 0.9999, 10},
		{"case insensitive", "MyThIc", 0, 1.5},
		{"unknown falls back to common", "shiny", 0.5, 1},
		{"empty quality is common", "", 0, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServ(rng.NewScripted(rng.Script{Floats: []float64{tt.roll}}))
			out, err := s.Sell(sell(100, tt.quality))
			if err != nil {
				t.Fatalf("Sell: %v", err)
			}
			if out.Multiplier != tt.want {
				t.Fatalf("multiplier = %v, want %v", out.Multiplier, tt.want)
			}
		})
	}
}

func TestSellExperience(t *testing.T) {
	s := newServ(rng.NewScripted(rng.Script{}))
	out, err := s.Sell(sell(12600, "common"))
	if err != nil {
		t.Fatalf("Sell: %v", err)
	}
	if out.Experience != 5 {
		t.Fatalf("experience = %d, want 5", out.Experience)
	}
}

func TestSellErrors(t *testing.T) {
	s := newServ(rng.NewScripted(rng.Script{}))
	p := sell(100, "rare")
	p.Action = "forge"
	if _, err := s.Sell(p); !errors.Is(err, model.ErrMalformedInput) {
		t.Fatalf("bad action err = %v", err)
	}
	if _, err := s.Sell(sell(0, "rare")); !errors.Is(err, model.ErrMalformedInput) {
		t.Fatalf("zero bet err = %v", err)
	}
}

// TestSellStaysInBand ensures payout/bet never leaves the quality band.
func TestSellStaysInBand(t *testing.T) {
	s := newServ(rng.NewSeeded(5))
	bands := env.DefaultRules().Merchant()
	for _, q := range []string{"cursed", "common", "uncommon", "rare", "epic", "legendary", "mythic", "artifact"} {
		b := bands.Band(q)
		for i := 0; i < 2000; i++ {
			out, err := s.Sell(sell(100, q))
			if err != nil {
				t.Fatalf("Sell: %v", err)
			}
			if out.Multiplier < b.Min || out.Multiplier > b.Max {
				t.Fatalf("%s multiplier %v outside [%v, %v]", q, out.Multiplier, b.Min, b.Max)
			}
			if math.Abs(out.Payout-out.Multiplier*100) > 1e-6 {
				t.Fatalf("payout %v != %v * 100", out.Payout, out.Multiplier)
			}
		}
	}
}

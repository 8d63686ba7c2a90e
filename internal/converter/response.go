package converter

import (
	dto "casino_engine/internal/api/dto/game"
	"casino_engine/internal/model"
	"strings"
)

func ToGameResultResponse(res model.GameResult) dto.GameResultResponse {
	return dto.GameResultResponse{
		Success:          true,
		GameType:         string(res.GameType),
		BetAmount:        res.BetAmount,
		Payout:           res.Payout,
		ExperienceGained: res.ExperienceGained,
		Data:             toData(res.Data),
	}
}

// ToFailureResponse ответ об ошибке. Данных игры в нем нет
func ToFailureResponse(gameType string, err error) dto.GameResultResponse {
	return dto.GameResultResponse{
		Success:  false,
		GameType: strings.ToLower(gameType),
		Error:    err.Error(),
	}
}

func toData(data any) any {
	switch d := data.(type) {
	case *model.BlackjackOutcome:
		return toBlackjackData(d)
	case *model.CoinflipOutcome:
		return dto.CoinflipData{
			CoinResult:   string(d.CoinResult),
			PlayerChoice: string(d.PlayerChoice),
			Result:       d.Result,
		}
	case *model.SpinOutcome:
		return dto.SlotData{
			Reels:        d.Board,
			Lines:        d.Lines,
			WinningLines: toWinEntries(d.WinningLines),
		}
	case *model.MerchantOutcome:
		item := dto.Item{Name: d.Item.Name, Icon: d.Item.Icon, Quality: d.Item.Quality}
		return dto.MerchantData{
			SelectedItem:       item,
			ItemIndex:          d.ItemIndex,
			ItemName:           item.Name,
			ItemIcon:           item.Icon,
			ItemQuality:        item.Quality,
			MerchantMultiplier: d.Multiplier,
			BetAmount:          d.BetAmount,
			TotalPayout:        d.Payout,
		}
	default:
		return nil
	}
}

func toBlackjackData(d *model.BlackjackOutcome) dto.BlackjackData {
	return dto.BlackjackData{
		PlayerHand:   toCards(d.PlayerHand),
		DealerHand:   toCards(d.DealerHand),
		PlayerScore:  d.PlayerScore,
		DealerScore:  d.DealerScore,
		DealerUpCard: d.DealerUpCard,
		GameState:    string(d.GameState),
		Result:       string(d.Result),
	}
}

func toCards(hand model.Hand) []dto.Card {
	if hand == nil {
		return nil
	}
	result := make([]dto.Card, len(hand))
	for i, c := range hand {
		result[i] = dto.Card{Suit: c.Label, Value: c.Value}
	}
	return result
}

func toWinEntries(wins []model.WinEntry) []dto.WinEntry {
	result := make([]dto.WinEntry, len(wins))
	for i, w := range wins {
		result[i] = dto.WinEntry{
			Line:   w.Line,
			Symbol: w.Symbol,
			Count:  w.Count,
			Payout: w.Payout,
			Type:   string(w.Kind),
		}
	}
	return result
}

func ToStatsResponse(stats []model.RTPStats) dto.StatsResponse {
	games := make([]dto.GameStats, len(stats))
	for i, s := range stats {
		alerts := make([]dto.StatsAlert, len(s.Alerts))
		for j, a := range s.Alerts {
			alerts[j] = dto.StatsAlert{
				Timestamp: a.Timestamp,
				Direction: a.Direction,
				WindowRTP: a.WindowRTP,
				Profit:    a.Profit,
			}
		}
		games[i] = dto.GameStats{
			GameType:    string(s.GameType),
			Rounds:      s.Rounds,
			TotalBet:    s.TotalBet,
			TotalPayout: s.TotalPayout,
			CurrentRTP:  s.CurrentRTP,
			WindowRTP:   s.WindowRTP,
			WindowSize:  s.WindowSize,
			TargetRTP:   s.TargetRTP,
			Alert:       s.Alert,

			AlertDirection: s.AlertDirection,
			Alerts:         alerts,
		}
	}
	return dto.StatsResponse{Games: games}
}

package converter

import (
	dto "casino_engine/internal/api/dto/game"
	"casino_engine/internal/model"
	"casino_engine/pkg/req"
	"strings"
)

// ToPlayRequest разбирает payload игры gameType в типизированный запрос
func ToPlayRequest(gameType string, data []byte) (model.PlayRequest, error) {
	gt, err := model.ParseGameType(gameType)
	if err != nil {
		return model.PlayRequest{}, err
	}

	var payload model.Payload
	switch gt {
	case model.GameBlackjack:
		payload, err = decode(gt, data, ToBlackjackPayload)
	case model.GameCoinflip:
		payload, err = decode(gt, data, ToCoinflipPayload)
	case model.GameSlot:
		payload, err = decode(gt, data, ToSlotPayload)
	case model.GameMerchant:
		payload, err = decode(gt, data, ToMerchantPayload)
	}
	if err != nil {
		return model.PlayRequest{}, err
	}
	return model.PlayRequest{GameType: gameType, Payload: payload}, nil
}

func decode[T any, P model.Payload](gt model.GameType, data []byte, conv func(T) (P, error)) (model.Payload, error) {
	r, err := req.Unmarshal[T](data)
	if err != nil {
		return nil, model.MalformedInputWrap(err, "invalid %s payload", gt)
	}
	p, err := conv(r)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func ToBlackjackPayload(r dto.BlackjackRequest) (model.BlackjackPayload, error) {
	bet, err := betAmount(r.BetAmount)
	if err != nil {
		return model.BlackjackPayload{}, err
	}
	action := model.ActionDeal
	if r.Action != nil {
		action = model.BlackjackAction(strings.ToLower(*r.Action))
	}
	switch action {
	case model.ActionDeal, model.ActionHit, model.ActionStand:
	default:
		return model.BlackjackPayload{}, model.MalformedInput("unknown blackjack action: %s", action)
	}

	player, err := toHand("playerHand", r.PlayerHand)
	if err != nil {
		return model.BlackjackPayload{}, err
	}
	dealer, err := toHand("dealerHand", r.DealerHand)
	if err != nil {
		return model.BlackjackPayload{}, err
	}
	return model.BlackjackPayload{
		BetAmount:  bet,
		Action:     action,
		PlayerHand: player,
		DealerHand: dealer,
	}, nil
}

func ToCoinflipPayload(r dto.CoinflipRequest) (model.CoinflipPayload, error) {
	bet, err := betAmount(r.BetAmount)
	if err != nil {
		return model.CoinflipPayload{}, err
	}
	if r.Choice == nil {
		return model.CoinflipPayload{}, model.MalformedInput("choice is required")
	}
	choice := model.CoinSide(strings.ToLower(*r.Choice))
	if choice != model.Heads && choice != model.Tails {
		return model.CoinflipPayload{}, model.MalformedInput("choice must be heads or tails, got %q", *r.Choice)
	}
	return model.CoinflipPayload{BetAmount: bet, Choice: choice}, nil
}

func ToSlotPayload(r dto.SlotRequest) (model.SlotPayload, error) {
	bet, err := betAmount(r.BetAmount)
	if err != nil {
		return model.SlotPayload{}, err
	}
	lines := 1
	if r.Lines != nil {
		lines = *r.Lines
	}
	if lines < 1 {
		return model.SlotPayload{}, model.MalformedInput("lines must be at least 1, got %d", lines)
	}
	return model.SlotPayload{BetAmount: bet, Lines: lines}, nil
}

func ToMerchantPayload(r dto.MerchantRequest) (model.MerchantPayload, error) {
	bet, err := betAmount(r.BetAmount)
	if err != nil {
		return model.MerchantPayload{}, err
	}
	action := model.ActionSell
	if r.Action != nil {
		action = model.MerchantAction(strings.ToLower(*r.Action))
	}
	if action != model.ActionSell {
		return model.MerchantPayload{}, model.MalformedInput("unknown merchant action: %s", action)
	}
	if r.ItemIndex == nil {
		return model.MerchantPayload{}, model.MalformedInput("itemIndex is required")
	}
	if *r.ItemIndex < 0 {
		return model.MerchantPayload{}, model.MalformedInput("itemIndex must be non-negative, got %d", *r.ItemIndex)
	}
	if r.SelectedItem == nil {
		return model.MerchantPayload{}, model.MalformedInput("selectedItem is required")
	}
	if r.SelectedItem.Name == "" {
		return model.MerchantPayload{}, model.MalformedInput("selectedItem.name is required")
	}
	return model.MerchantPayload{
		BetAmount: bet,
		Action:    action,
		ItemIndex: *r.ItemIndex,
		Item: model.MerchantItem{
			Name:    r.SelectedItem.Name,
			Icon:    r.SelectedItem.Icon,
			Quality: r.SelectedItem.Quality,
		},
	}, nil
}

func betAmount(v *float64) (float64, error) {
	if v == nil {
		return 0, model.MalformedInput("betAmount is required")
	}
	if *v <= 0 {
		return 0, model.MalformedInput("betAmount must be positive, got %v", *v)
	}
	return *v, nil
}

// toHand nil остается nil: поле не передано
func toHand(field string, cards []dto.CardRequest) (model.Hand, error) {
	if cards == nil {
		return nil, nil
	}
	hand := make(model.Hand, 0, len(cards))
	for i, c := range cards {
		if c.Suit == nil || *c.Suit == "" {
			return nil, model.MalformedInput("%s[%d].suit is required", field, i)
		}
		if c.Value == nil {
			return nil, model.MalformedInput("%s[%d].value is required", field, i)
		}
		card := model.Card{Label: *c.Suit, Value: *c.Value}
		if card.IsHidden() {
			if card.Value != 0 {
				return nil, model.MalformedInput("%s[%d]: hidden card must have value 0", field, i)
			}
		} else if card.Value < 2 || card.Value > 11 {
			return nil, model.MalformedInput("%s[%d].value must be in [2,11], got %d", field, i, card.Value)
		}
		hand = append(hand, card)
	}
	return hand, nil
}

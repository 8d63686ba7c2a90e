package service

import (
	"casino_engine/internal/model"
	"context"
)

type BlackjackService interface {
	Play(p model.BlackjackPayload) (*model.BlackjackOutcome, error)
}

type CoinflipService interface {
	Flip(p model.CoinflipPayload) (*model.CoinflipOutcome, error)
}

type SlotService interface {
	Spin(p model.SlotPayload) (*model.SpinOutcome, error)
}

type MerchantService interface {
	Sell(p model.MerchantPayload) (*model.MerchantOutcome, error)
}

// GameService диспетчер: направляет запрос в движок нужной игры
type GameService interface {
	Play(ctx context.Context, req model.PlayRequest) (*model.GameResult, error)
	Stats() []model.RTPStats
}

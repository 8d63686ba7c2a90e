package game

import (
	"casino_engine/internal/repository"
	"casino_engine/internal/service"

	"go.uber.org/zap"
)

type serv struct {
	blackjack service.BlackjackService
	coinflip  service.CoinflipService
	slot      service.SlotService
	merchant  service.MerchantService
	statsRepo repository.StatsRepository
	logger    *zap.Logger
}

// NewGameService Создать диспетчер игр
func NewGameService(
	blackjack service.BlackjackService,
	coinflip service.CoinflipService,
	slot service.SlotService,
	merchant service.MerchantService,
	statsRepo repository.StatsRepository,
	logger *zap.Logger,
) service.GameService {
	return &serv{
		blackjack: blackjack,
		coinflip:  coinflip,
		slot:      slot,
		merchant:  merchant,
		statsRepo: statsRepo,
		logger:    logger,
	}
}

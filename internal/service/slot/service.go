package slot

import (
	"casino_engine/internal/config"
	"casino_engine/internal/service"
	"casino_engine/pkg/rng"
)

type serv struct {
	cfg config.SlotConfig
	rnd rng.Source
}

// NewSlotService Создать слот 5x3 с линиями-зигзагами
func NewSlotService(cfg config.SlotConfig, rnd rng.Source) service.SlotService {
	return &serv{
		cfg: cfg,
		rnd: rnd,
	}
}

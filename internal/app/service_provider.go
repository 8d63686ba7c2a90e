package app

import (
	gameAPI "casino_engine/internal/api/game"
	"casino_engine/internal/config"
	"casino_engine/internal/config/env"
	"casino_engine/internal/repository"
	"casino_engine/internal/repository/stats_repo"
	"casino_engine/internal/service"
	"casino_engine/internal/service/blackjack"
	"casino_engine/internal/service/coinflip"
	"casino_engine/internal/service/game"
	"casino_engine/internal/service/merchant"
	"casino_engine/internal/service/slot"
	"casino_engine/pkg/logger"
	"casino_engine/pkg/rng"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Configs
	engineCfg config.EngineConfig
	statsCfg  config.StatsConfig
	rulesCfg  config.RulesConfig

	logger *zap.Logger
	rnd    rng.Source

	// Stats bits
	statsRepo repository.StatsRepository

	// Game bits
	blackjackServ service.BlackjackService
	coinflipServ  service.CoinflipService
	slotServ      service.SlotService
	merchantServ  service.MerchantService
	gameServ      service.GameService
	gameHand      *gameAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) EngineCfg() config.EngineConfig {
	if sp.engineCfg == nil {
		cfg, err := env.NewEngineConfig()
		if err != nil {
			panic("failed to get engine config: " + err.Error())
		}
		sp.engineCfg = cfg
	}
	return sp.engineCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		l, err := logger.New(sp.EngineCfg().LogLevel())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) RulesCfg() config.RulesConfig {
	if sp.rulesCfg == nil {
		cfg, err := env.NewRulesFromYAML(sp.EngineCfg().RulesPath())
		if err != nil {
			panic("failed to get rules config: " + err.Error())
		}
		sp.Logger().Info("rules loaded",
			zap.String("version", cfg.Version()),
			zap.String("path", sp.EngineCfg().RulesPath()),
		)
		sp.rulesCfg = cfg
	}
	return sp.rulesCfg
}

// RandomSource криптостойкий источник, либо детерминированный при заданном RNG_SEED
func (sp *ServiceProvider) RandomSource() rng.Source {
	if sp.rnd == nil {
		if seed := sp.EngineCfg().RNGSeed(); seed != nil {
			sp.Logger().Warn("using seeded random source, outcomes are predictable", zap.Uint64("seed", *seed))
			sp.rnd = rng.NewSeeded(*seed)
		} else {
			sp.rnd = rng.NewCrypto()
		}
	}
	return sp.rnd
}

func (sp *ServiceProvider) StatsCfg() config.StatsConfig {
	if sp.statsCfg == nil {
		cfg, err := env.NewStatsConfig()
		if err != nil {
			panic("failed to get stats config: " + err.Error())
		}
		sp.statsCfg = cfg
	}
	return sp.statsCfg
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.StatsCfg(), sp.Logger())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) BlackjackService() service.BlackjackService {
	if sp.blackjackServ == nil {
		sp.blackjackServ = blackjack.NewBlackjackService(sp.RulesCfg().Blackjack(), sp.RandomSource())
	}
	return sp.blackjackServ
}

func (sp *ServiceProvider) CoinflipService() service.CoinflipService {
	if sp.coinflipServ == nil {
		sp.coinflipServ = coinflip.NewCoinflipService(sp.RulesCfg().Coinflip(), sp.RandomSource())
	}
	return sp.coinflipServ
}

func (sp *ServiceProvider) SlotService() service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(sp.RulesCfg().Slot(), sp.RandomSource())
	}
	return sp.slotServ
}

func (sp *ServiceProvider) MerchantService() service.MerchantService {
	if sp.merchantServ == nil {
		sp.merchantServ = merchant.NewMerchantService(sp.RulesCfg().Merchant(), sp.RandomSource())
	}
	return sp.merchantServ
}

func (sp *ServiceProvider) GameService() service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(
			sp.BlackjackService(),
			sp.CoinflipService(),
			sp.SlotService(),
			sp.MerchantService(),
			sp.StatsRepository(),
			sp.Logger(),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler() *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv:   sp.GameService(),
			Logger: sp.Logger(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Game endpoints
		gameHandler := sp.GameHandler()
		r.Route("/games", func(rr chi.Router) {
			rr.Get("/stats", gameHandler.Stats)
			rr.Post("/{gameType}", gameHandler.Play)
		})

		sp.router = r
	}

	return sp.router
}

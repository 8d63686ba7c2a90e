package game

import (
	"casino_engine/internal/model"
	"context"

	"go.uber.org/zap"
)

// Play определяет игру по имени и передает payload в ее движок
func (s *serv) Play(ctx context.Context, req model.PlayRequest) (*model.GameResult, error) {
	gameType, err := model.ParseGameType(req.GameType)
	if err != nil {
		s.logger.Warn("unsupported game type", zap.String("game", req.GameType))
		return nil, err
	}
	if req.Payload == nil || req.Payload.Game() != gameType {
		return nil, model.MalformedInput("payload does not match game type %s", gameType)
	}

	res, stake, err := s.route(req.Payload)
	if err != nil {
		s.logger.Warn("round rejected",
			zap.String("game", string(gameType)),
			zap.String("kind", string(model.KindOf(err))),
			zap.Error(err),
		)
		return nil, err
	}
	res.GameType = gameType
	res.BetAmount = req.Payload.Bet()

	s.statsRepo.UpdateState(gameType, stake, res.Payout)

	s.logger.Debug("round resolved",
		zap.String("game", string(gameType)),
		zap.Float64("bet", res.BetAmount),
		zap.Float64("payout", res.Payout),
		zap.Int("experience", res.ExperienceGained),
	)
	return res, nil
}

// route возвращает итог и ставку, которую надо учесть в статистике.
// Hit и stand продолжают уже оплаченную раздачу, поэтому ставка для них нулевая.
func (s *serv) route(payload model.Payload) (*model.GameResult, float64, error) {
	switch p := payload.(type) {
	case model.BlackjackPayload:
		out, err := s.blackjack.Play(p)
		if err != nil {
			return nil, 0, err
		}
		stake := p.BetAmount
		if p.Action == model.ActionHit || p.Action == model.ActionStand {
			stake = 0
		}
		return &model.GameResult{Payout: out.Payout, ExperienceGained: out.Experience, Data: out}, stake, nil
	case model.CoinflipPayload:
		out, err := s.coinflip.Flip(p)
		if err != nil {
			return nil, 0, err
		}
		return &model.GameResult{Payout: out.Payout, ExperienceGained: out.Experience, Data: out}, p.BetAmount, nil
	case model.SlotPayload:
		out, err := s.slot.Spin(p)
		if err != nil {
			return nil, 0, err
		}
		return &model.GameResult{Payout: out.Payout, ExperienceGained: out.Experience, Data: out}, p.BetAmount, nil
	case model.MerchantPayload:
		out, err := s.merchant.Sell(p)
		if err != nil {
			return nil, 0, err
		}
		return &model.GameResult{Payout: out.Payout, ExperienceGained: out.Experience, Data: out}, p.BetAmount, nil
	default:
		return nil, 0, model.MalformedInput("unsupported payload %T", payload)
	}
}

// Stats статистика RTP по всем играм
func (s *serv) Stats() []model.RTPStats {
	return s.statsRepo.Snapshot()
}

package game

import (
	dto "casino_engine/internal/api/dto/game"
	"casino_engine/internal/converter"
	"casino_engine/internal/model"
	"casino_engine/internal/service"
	"casino_engine/pkg/resp"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Максимальный размер тела запроса
const maxBodySize = 1 << 20

type HandlerDeps struct {
	Serv   service.GameService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.GameService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, logger: deps.Logger}
}

// Play POST /games/{gameType}: тело запроса это payload игры
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	gameType := chi.URLParam(r, "gameType")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		err = model.MalformedInputWrap(err, "failed to read request body")
		resp.WriteJSONResponse(w, http.StatusBadRequest, converter.ToFailureResponse(gameType, err))
		return
	}

	response, err := h.Resolve(r.Context(), gameType, body)
	resp.WriteJSONResponse(w, statusFor(err), response)
}

// Stats GET /games/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

// Resolve разрешает один раунд и всегда возвращает конверт результата.
// Ошибка возвращается отдельно, чтобы транспорт мог выбрать код ответа.
func (h *Handler) Resolve(ctx context.Context, gameType string, payload []byte) (response dto.GameResultResponse, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("panic while resolving round",
				zap.String("game", gameType),
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)
			err = fmt.Errorf("internal error: %v", rec)
			response = converter.ToFailureResponse(gameType, err)
		}
	}()

	playReq, err := converter.ToPlayRequest(gameType, payload)
	if err != nil {
		return converter.ToFailureResponse(gameType, err), err
	}

	result, err := h.serv.Play(ctx, playReq)
	if err != nil {
		return converter.ToFailureResponse(gameType, err), err
	}
	return converter.ToGameResultResponse(*result), nil
}

func statusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch model.KindOf(err) {
	case model.KindUnsupportedGameType:
		return http.StatusNotFound
	case model.KindMalformedInput:
		return http.StatusBadRequest
	case model.KindInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

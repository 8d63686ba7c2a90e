package app

import (
	"casino_engine/internal/config"
	"casino_engine/pkg/resp"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	err := config.Load(".env")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}
	s.ServiceProvider = newServiceProvider()
}

// Run запускает HTTP-сервер и ждет SIGINT/SIGTERM
func (s *App) Run() error {
	s.initServiceProvider()
	sp := s.ServiceProvider
	logger := sp.Logger()
	defer func() { _ = logger.Sync() }()

	srv := &http.Server{
		Addr:         sp.HTTPCfg().Address(),
		Handler:      sp.Router(),
		ReadTimeout:  sp.HTTPCfg().ReadTimeout(),
		WriteTimeout: sp.HTTPCfg().WriteTimeout(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("rules", sp.RulesCfg().Version()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Resolve разрешает один раунд для CLI и возвращает JSON результата.
// Ошибки игры попадают в сам результат.
func (s *App) Resolve(ctx context.Context, gameType string, payload []byte) []byte {
	s.initServiceProvider()
	logger := s.ServiceProvider.Logger()
	defer func() { _ = logger.Sync() }()

	response, _ := s.ServiceProvider.GameHandler().Resolve(ctx, gameType, payload)
	out, err := resp.Marshal(response)
	if err != nil {
		logger.Error("failed to marshal result", zap.Error(err))
		return []byte(`{"success":false,"error":"internal error"}`)
	}
	return out
}

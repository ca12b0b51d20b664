package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/PinAlbum/internal/album"
	"github.com/GoArmGo/PinAlbum/internal/config"
	"github.com/GoArmGo/PinAlbum/internal/core/ports"
	"github.com/GoArmGo/PinAlbum/internal/usecase"
)

// Mode это режим запуска приложения
type Mode string

const (
	ModeServer Mode = "server"
	ModeWorker Mode = "worker"
)

// ParseMode проверяет значение флага -mode
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeServer, ModeWorker:
		return m, nil
	default:
		return "", fmt.Errorf("неизвестный режим: %s (используйте 'server' или 'worker')", s)
	}
}

// Deps это собранные в di зависимости приложения
type Deps struct {
	PlaceUseCase usecase.PlaceUseCase
	Syncer       usecase.AlbumSyncer
	Images       usecase.ImageResolver
	Albums       *album.Registry
	// Publisher и Consumer равны nil, если очередь не настроена
	Publisher ports.AlbumRefreshPublisher
	Consumer  ports.AlbumRefreshConsumer
	// Closers закрываются в обратном порядке при завершении
	Closers []func() error
}

type App struct {
	Config *config.Config
	logger *slog.Logger
	deps   Deps
}

func NewApp(cfg *config.Config, logger *slog.Logger, deps Deps) *App {
	return &App{
		Config: cfg,
		logger: logger,
		deps:   deps,
	}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает приложение в выбранном режиме и блокируется до сигнала завершения
func (a *App) Run(ctx context.Context, mode Mode) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting", "mode", mode)

	var err error
	switch mode {
	case ModeServer:
		err = runServer(ctx, a.Config, a.deps, a.logger)
	case ModeWorker:
		err = runWorker(ctx, a.deps, a.logger)
	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server' или 'worker')", mode)
	}

	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown failed", "error", closeErr)
	}
	return err
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.deps.Albums != nil {
		a.deps.Albums.Close()
	}

	var errs []error
	for i := len(a.deps.Closers) - 1; i >= 0; i-- {
		if err := a.deps.Closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.deps.Closers = nil

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("ошибка закрытия ресурсов: %w", err)
	}
	a.logger.Info("resources closed")
	return nil
}

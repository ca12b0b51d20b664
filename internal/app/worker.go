package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/GoArmGo/PinAlbum/internal/messaging/payloads"
	"github.com/GoArmGo/PinAlbum/internal/usecase"
)

// refreshHandler возвращает обработчик сообщений очереди обновления альбомов
func refreshHandler(syncer usecase.AlbumSyncer, logger *slog.Logger) func(context.Context, payloads.AlbumRefreshPayload) error {
	return func(ctx context.Context, payload payloads.AlbumRefreshPayload) error {
		start := time.Now()
		photos, err := syncer.PopulateAlbum(ctx, payload.PlaceID)
		if err != nil {
			if !errors.Is(err, domain.ErrSyncInProgress) {
				logger.Error("worker: album refresh failed", "place_id", payload.PlaceID, "error", err)
			}
			return err
		}
		logger.Info("worker: album refreshed",
			"place_id", payload.PlaceID,
			"photos", len(photos),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}
}

// runWorker запускает потребителя RabbitMQ и обрабатывает сообщения до отмены ctx
func runWorker(ctx context.Context, deps Deps, logger *slog.Logger) error {
	if deps.Consumer == nil {
		return errors.New("worker mode requires a RabbitMQ consumer")
	}

	logger.Info("worker started, waiting for album refresh messages")

	if err := deps.Consumer.StartConsumingAlbumRefresh(ctx, refreshHandler(deps.Syncer, logger)); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}

	<-ctx.Done()
	logger.Info("worker: shutdown signal received")
	return nil
}

package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/PinAlbum/internal/adapter/flickr"
	"github.com/GoArmGo/PinAlbum/internal/adapter/lock"
	"github.com/GoArmGo/PinAlbum/internal/adapter/storage/minio"
	"github.com/GoArmGo/PinAlbum/internal/album"
	"github.com/GoArmGo/PinAlbum/internal/app"
	"github.com/GoArmGo/PinAlbum/internal/config"
	"github.com/GoArmGo/PinAlbum/internal/core/ports"
	"github.com/GoArmGo/PinAlbum/internal/database/boltdb"
	"github.com/GoArmGo/PinAlbum/internal/database/client"
	"github.com/GoArmGo/PinAlbum/internal/database/storage"
	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/GoArmGo/PinAlbum/internal/logger"
	"github.com/GoArmGo/PinAlbum/internal/rabbitmq"
	"github.com/GoArmGo/PinAlbum/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp(ctx context.Context, mode app.Mode) (_ *app.App, err error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// ресурсы закрываются в обратном порядке, при ошибке сборки сразу
	var closers []func() error
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				_ = closers[i]()
			}
		}
	}()

	// 2. Хранилище
	store, err := buildStore(ctx, cfg, slogger)
	if err != nil {
		return nil, err
	}
	closers = append(closers, store.Close)

	// 3. Блокировка синхронизации мест
	locker, closeLocker, err := buildLocker(ctx, cfg, slogger)
	if err != nil {
		return nil, err
	}
	if closeLocker != nil {
		closers = append(closers, closeLocker)
	}

	// 4. Клиенты внешних сервисов
	searchClient := flickr.NewClient(cfg, slogger)
	downloader := flickr.NewDownloader(cfg, slogger)

	// 5. Бизнес-логика
	window := domain.PageWindow{MaxTotalItems: cfg.Flickr.MaxTotalItems, PerPage: cfg.Flickr.PerPage}
	syncEngine := usecase.NewAlbumSyncEngine(store, searchClient, locker, window, nil, slogger)
	imageCache := usecase.NewImageCache(store, downloader, slogger)
	placeUseCase := usecase.NewPlaceUseCase(store, window.Ceiling(), slogger)
	albums := album.NewRegistry(syncEngine, imageCache, store, slogger)

	// 6. RabbitMQ: обязателен для воркера, для сервера только если задан RABBITMQ_URL
	var queue *rabbitmq.Client
	if mode == app.ModeWorker || cfg.RabbitMQ.RabbitMQURL != "" {
		if cfg.RabbitMQ.RabbitMQURL == "" {
			return nil, fmt.Errorf("RABBITMQ_URL must be set for %s mode", mode)
		}
		queue, err = rabbitmq.NewClient(cfg, slogger)
		if err != nil {
			return nil, err
		}
		closers = append(closers, queue.Close)
	}

	deps := app.Deps{
		PlaceUseCase: placeUseCase,
		Syncer:       syncEngine,
		Images:       imageCache,
		Albums:       albums,
		Closers:      closers,
	}
	// интерфейсы получают nil, а не типизированный nil-указатель
	if queue != nil {
		deps.Publisher = queue
		deps.Consumer = queue
	}

	slogger.Info("all dependencies initialized", "store", cfg.StoreDriver, "distributed_lock", cfg.RedisURL != "", "queue", queue != nil)
	return app.NewApp(cfg, slogger, deps), nil
}

func buildStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.Storage, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		dbClient, err := client.NewClient(cfg, logger)
		if err != nil {
			return nil, err
		}
		blobs, err := minio.NewMinioClient(ctx, cfg, logger)
		if err != nil {
			_ = dbClient.Close()
			return nil, err
		}
		return storage.NewPostgresStorage(dbClient.DB, blobs, logger), nil
	default:
		return boltdb.Open(cfg.BoltPath, logger)
	}
}

func buildLocker(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.PlaceLocker, func() error, error) {
	if cfg.RedisURL == "" {
		return lock.NewLocal(), nil, nil
	}
	rdb, err := lock.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return lock.NewRedis(rdb, cfg.LockTTL, logger), rdb.Close, nil
}

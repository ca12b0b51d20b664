package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"time"

	"github.com/GoArmGo/PinAlbum/internal/core/ports"
	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/GoArmGo/PinAlbum/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// Источники изображения для метрик
const (
	sourceMemory  = "memory"
	sourceStore   = "store"
	sourceNetwork = "network"
)

// ImageCache реализует ImageResolver: байты скачиваются один раз и сохраняются в хранилище,
// параллельные запросы одного фото ждут одну и ту же загрузку
type ImageCache struct {
	photos     ports.PhotoStorage
	downloader ImageDownloader
	flights    singleflight.Group
	logger     *slog.Logger
}

// NewImageCache создает новый экземпляр ImageCache.
func NewImageCache(photos ports.PhotoStorage, downloader ImageDownloader, logger *slog.Logger) *ImageCache {
	return &ImageCache{
		photos:     photos,
		downloader: downloader,
		logger:     logger,
	}
}

// Resolve возвращает байты изображения фото.
// Общая загрузка не отменяется, если один из ожидающих ушел: ctx ограничивает только ожидание.
func (c *ImageCache) Resolve(ctx context.Context, photo domain.Photo) ([]byte, error) {
	if photo.Cached() {
		metrics.ImageResolveTotal.WithLabelValues(sourceMemory, metrics.OutcomeOK).Inc()
		return photo.Image, nil
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := c.flights.DoChan(photo.ID.String(), func() (interface{}, error) {
		return c.fetch(flightCtx, photo)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: resolve image: %w", domain.ErrNetwork, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

// ResolveAsync запускает Resolve в отдельной горутине
func (c *ImageCache) ResolveAsync(ctx context.Context, photo domain.Photo) <-chan ImageResult {
	out := make(chan ImageResult, 1)
	go func() {
		defer close(out)
		data, err := c.Resolve(ctx, photo)
		out <- ImageResult{PhotoID: photo.ID, Data: data, Err: err}
	}()
	return out
}

// fetch выполняется не более одного раза одновременно для одного фото
func (c *ImageCache) fetch(ctx context.Context, photo domain.Photo) ([]byte, error) {
	start := time.Now()

	data, ok, err := c.photos.GetPhotoImage(ctx, photo.ID)
	if err != nil {
		metrics.ImageResolveTotal.WithLabelValues(sourceStore, metrics.Outcome(err)).Inc()
		return nil, err
	}
	if ok {
		metrics.ImageResolveTotal.WithLabelValues(sourceStore, metrics.OutcomeOK).Inc()
		return data, nil
	}

	data, err = c.download(ctx, photo)
	metrics.ImageResolveTotal.WithLabelValues(sourceNetwork, metrics.Outcome(err)).Inc()
	if err != nil {
		c.logger.Warn("failed to resolve image",
			"photo_id", photo.ID,
			"url", photo.RemoteURL,
			"error", err,
		)
		return nil, err
	}

	c.logger.Debug("image resolved from network",
		"photo_id", photo.ID,
		"bytes", len(data),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return data, nil
}

func (c *ImageCache) download(ctx context.Context, photo domain.Photo) ([]byte, error) {
	raw, err := c.downloader.Download(ctx, photo.RemoteURL)
	if err != nil {
		return nil, err
	}

	encoded, err := reencodePNG(raw)
	if err != nil {
		return nil, err
	}

	if err := c.photos.SavePhotoImage(ctx, photo.ID, encoded); err != nil {
		if errors.Is(err, domain.ErrPhotoNotFound) || errors.Is(err, domain.ErrDatabase) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: save image: %w", domain.ErrDatabase, err)
	}
	return encoded, nil
}

// reencodePNG декодирует JPEG, PNG или GIF и кодирует результат в PNG
func reencodePNG(raw []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidImage, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encode png: %w", domain.ErrInvalidImage, err)
	}
	return buf.Bytes(), nil
}

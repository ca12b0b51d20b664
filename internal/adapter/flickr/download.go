package flickr

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/PinAlbum/internal/config"
	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/GoArmGo/PinAlbum/internal/metrics"
	"golang.org/x/sync/semaphore"
)

const maxImageSize = 20 << 20

// Downloader скачивает байты изображений по url_m, ограничивая число одновременных загрузок
type Downloader struct {
	httpClient *http.Client
	sem        *semaphore.Weighted
	logger     *slog.Logger
}

// NewDownloader создает новый экземпляр Downloader.
func NewDownloader(cfg *config.Config, logger *slog.Logger) *Downloader {
	concurrency := cfg.DownloadConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Downloader{
		httpClient: &http.Client{Timeout: cfg.HTTPClientTimeout},
		sem:        semaphore.NewWeighted(int64(concurrency)),
		logger:     logger,
	}
}

// Download скачивает изображение. Ошибка транспорта возвращается как ErrNetwork,
// неуспешный HTTP статус как ErrServer.
func (d *Downloader) Download(ctx context.Context, imageURL string) ([]byte, error) {
	if err := d.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("%w: wait for download slot: %w", domain.ErrNetwork, err)
	}
	defer d.sem.Release(1)

	metrics.ImageDownloadsInFlight.Inc()
	defer metrics.ImageDownloadsInFlight.Dec()

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build download request: %w", domain.ErrUnknown, err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: download image: %w", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: image download returned status %d", domain.ErrServer, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read image body: %w", domain.ErrNetwork, err)
	}
	if len(data) > maxImageSize {
		return nil, fmt.Errorf("%w: image is larger than %d bytes", domain.ErrInvalidImage, maxImageSize)
	}

	metrics.ImageDownloadBytes.Add(float64(len(data)))
	d.logger.Debug("image downloaded",
		"url", imageURL,
		"bytes", len(data),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return data, nil
}

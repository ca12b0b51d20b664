package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/GoArmGo/PinAlbum/internal/core/ports"
	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/GoArmGo/PinAlbum/internal/metrics"
	"github.com/google/uuid"
)

// AlbumSyncEngine реализует AlbumSyncer
type AlbumSyncEngine struct {
	places   ports.PlaceStorage
	searcher PhotoSearcher
	locker   ports.PlaceLocker
	window   domain.PageWindow
	logger   *slog.Logger

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// NewAlbumSyncEngine создает новый экземпляр AlbumSyncEngine.
// rnd можно передать для детерминированных тестов; nil означает случайный источник.
func NewAlbumSyncEngine(
	places ports.PlaceStorage,
	searcher PhotoSearcher,
	locker ports.PlaceLocker,
	window domain.PageWindow,
	rnd *rand.Rand,
	logger *slog.Logger,
) *AlbumSyncEngine {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &AlbumSyncEngine{
		places:   places,
		searcher: searcher,
		locker:   locker,
		window:   window,
		logger:   logger,
		rnd:      rnd,
	}
}

// pickPage возвращает случайную страницу из [0, pageCount)
func (e *AlbumSyncEngine) pickPage(pageCount int) int {
	e.rndMu.Lock()
	defer e.rndMu.Unlock()
	return e.rnd.IntN(pageCount)
}

// PopulateAlbum выбирает случайную страницу поиска, сужает pageCount места
// и в одной транзакции заменяет все фото места результатами.
// При любой ошибке сохраненный альбом остается прежним.
func (e *AlbumSyncEngine) PopulateAlbum(ctx context.Context, placeID uuid.UUID) (photos []domain.Photo, err error) {
	start := time.Now()
	defer func() {
		metrics.AlbumSyncDuration.Observe(time.Since(start).Seconds())
		metrics.AlbumSyncTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	}()

	unlock, ok, err := e.locker.TryLock(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("%w: acquire place lock: %w", domain.ErrDatabase, err)
	}
	if !ok {
		e.logger.Info("album sync already running, dropping request", "place_id", placeID)
		return nil, domain.ErrSyncInProgress
	}
	defer unlock()

	place, err := e.places.GetPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}

	pageCount := e.window.Effective(place.PageCount)
	page := e.pickPage(pageCount)

	result, err := e.searcher.Search(ctx, place.Latitude, place.Longitude, page)
	if err != nil {
		return nil, err
	}
	newPageCount := e.window.Tighten(result.Pages)

	// пустая страница за пределами нового окна означает устаревший pageCount, а не пустое место
	if len(result.Photos) == 0 && page >= newPageCount {
		page = e.pickPage(newPageCount)
		e.logger.Debug("search page outside narrowed window, retrying",
			"place_id", placeID,
			"page", page,
			"page_count", newPageCount,
		)
		result, err = e.searcher.Search(ctx, place.Latitude, place.Longitude, page)
		if err != nil {
			return nil, err
		}
		newPageCount = e.window.Tighten(result.Pages)
	}

	stubs := result.Photos
	if e.window.PerPage > 0 && len(stubs) > e.window.PerPage {
		stubs = stubs[:e.window.PerPage]
	}
	photos = domain.NewAlbum(place.ID, stubs)

	if err := e.places.ReplaceAlbum(ctx, place.ID, newPageCount, photos); err != nil {
		if !errors.Is(err, domain.ErrDatabase) && !errors.Is(err, domain.ErrPlaceNotFound) {
			err = fmt.Errorf("%w: replace album: %w", domain.ErrDatabase, err)
		}
		return nil, err
	}

	e.logger.Info("album synced",
		"place_id", placeID,
		"page", page,
		"page_count", newPageCount,
		"photos", len(photos),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return photos, nil
}

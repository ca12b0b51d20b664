package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/GoArmGo/PinAlbum/internal/core/ports"
	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
)

// placeUseCase implements PlaceUseCase
type placeUseCase struct {
	store            ports.Storage
	defaultPageCount int
	logger           *slog.Logger
}

// NewPlaceUseCase создает новый экземпляр PlaceUseCase.
// defaultPageCount задает начальный pageCount нового места.
func NewPlaceUseCase(store ports.Storage, defaultPageCount int, logger *slog.Logger) PlaceUseCase {
	return &placeUseCase{
		store:            store,
		defaultPageCount: defaultPageCount,
		logger:           logger,
	}
}

func (uc *placeUseCase) CreatePlace(ctx context.Context, label string, latitude, longitude float64) (*domain.Place, error) {
	place, err := domain.NewPlace(label, latitude, longitude, uc.defaultPageCount)
	if err != nil {
		return nil, err
	}
	if err := uc.store.CreatePlace(ctx, place); err != nil {
		return nil, fmt.Errorf("usecase: create place %q: %w", label, err)
	}

	uc.logger.Info("place created", "id", place.ID, "label", place.LocationString)
	return place, nil
}

// placeLabels реализует fuzzy.Source над подписями мест
type placeLabels []domain.Place

func (p placeLabels) String(i int) string { return strings.ToLower(p[i].LocationString) }
func (p placeLabels) Len() int            { return len(p) }

func (uc *placeUseCase) ListPlaces(ctx context.Context, query string) ([]domain.Place, error) {
	places, err := uc.store.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: list places: %w", err)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return places, nil
	}

	// совпадения уже отсортированы по релевантности
	matches := fuzzy.FindFrom(strings.ToLower(query), placeLabels(places))
	filtered := make([]domain.Place, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, places[m.Index])
	}
	return filtered, nil
}

func (uc *placeUseCase) FindPlaceByLabel(ctx context.Context, label string) (*domain.Place, error) {
	return uc.store.FindPlaceByLabel(ctx, strings.TrimSpace(label))
}

func (uc *placeUseCase) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	return uc.store.GetPlace(ctx, id)
}

func (uc *placeUseCase) DeletePlace(ctx context.Context, id uuid.UUID) error {
	if err := uc.store.DeletePlace(ctx, id); err != nil {
		return fmt.Errorf("usecase: delete place %s: %w", id, err)
	}
	uc.logger.Info("place deleted", "id", id)
	return nil
}

func (uc *placeUseCase) ListPhotos(ctx context.Context, placeID uuid.UUID) ([]domain.Photo, error) {
	return uc.store.ListPhotos(ctx, placeID)
}

func (uc *placeUseCase) GetPhoto(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	return uc.store.GetPhoto(ctx, id)
}

func (uc *placeUseCase) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	if err := uc.store.DeletePhoto(ctx, id); err != nil {
		return fmt.Errorf("usecase: delete photo %s: %w", id, err)
	}
	uc.logger.Info("photo deleted", "id", id)
	return nil
}

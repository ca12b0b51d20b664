package usecase

//go:generate mockgen -source=album.go -destination=mocks/mock_album.go -package=mock_usecase
//go:generate mockgen -destination=mocks/mock_ports.go -package=mock_usecase github.com/GoArmGo/PinAlbum/internal/core/ports Storage,PlaceLocker

import (
	"context"

	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/google/uuid"
)

// PhotoSearcher ищет фото рядом с координатами у внешнего провайдера (Flickr).
// page нумеруется с нуля.
type PhotoSearcher interface {
	Search(ctx context.Context, latitude, longitude float64, page int) (domain.SearchPage, error)
}

// ImageDownloader скачивает байты изображения по его URL
type ImageDownloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// AlbumSyncer заполняет альбом места свежей случайной страницей результатов поиска
type AlbumSyncer interface {
	// PopulateAlbum заменяет все фото места и возвращает новый набор.
	// Параллельный вызов для того же места возвращает domain.ErrSyncInProgress.
	PopulateAlbum(ctx context.Context, placeID uuid.UUID) ([]domain.Photo, error)
}

// ImageResult это результат асинхронного получения изображения
type ImageResult struct {
	PhotoID uuid.UUID
	Data    []byte
	Err     error
}

// ImageResolver отдает байты изображения фото: из памяти, из хранилища или из сети
type ImageResolver interface {
	Resolve(ctx context.Context, photo domain.Photo) ([]byte, error)
	// ResolveAsync возвращает канал, в который ровно один раз придет результат
	ResolveAsync(ctx context.Context, photo domain.Photo) <-chan ImageResult
}

// PlaceUseCase определяет бизнес-логику работы с местами и отдельными фото
type PlaceUseCase interface {
	CreatePlace(ctx context.Context, label string, latitude, longitude float64) (*domain.Place, error)
	// ListPlaces возвращает все места; непустой query фильтрует их нечетким поиском по подписи
	ListPlaces(ctx context.Context, query string) ([]domain.Place, error)
	FindPlaceByLabel(ctx context.Context, label string) (*domain.Place, error)
	GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	// DeletePlace удаляет место вместе со всеми его фото
	DeletePlace(ctx context.Context, id uuid.UUID) error

	ListPhotos(ctx context.Context, placeID uuid.UUID) ([]domain.Photo, error)
	GetPhoto(ctx context.Context, id uuid.UUID) (*domain.Photo, error)
	DeletePhoto(ctx context.Context, id uuid.UUID) error
}

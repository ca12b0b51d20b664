package ports

import (
	"context"
	"io"

	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/google/uuid"
)

// PlaceStorage определяет методы для работы с хранилищем мест и их альбомов.
// Каждый метод, который что-то меняет, либо сохраняет изменения целиком, либо возвращает ошибку.
type PlaceStorage interface {
	CreatePlace(ctx context.Context, place *domain.Place) error
	GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	FindPlaceByLabel(ctx context.Context, label string) (*domain.Place, error)
	ListPlaces(ctx context.Context) ([]domain.Place, error)
	// DeletePlace удаляет место вместе со всеми его фото
	DeletePlace(ctx context.Context, id uuid.UUID) error

	// ReplaceAlbum в одной транзакции обновляет pageCount места и заменяет весь набор его фото
	ReplaceAlbum(ctx context.Context, placeID uuid.UUID, pageCount int, photos []domain.Photo) error
}

// PhotoStorage определяет методы для работы с фото и байтами их изображений
type PhotoStorage interface {
	// ListPhotos возвращает фото места в порядке Position, без байтов изображения
	ListPhotos(ctx context.Context, placeID uuid.UUID) ([]domain.Photo, error)
	GetPhoto(ctx context.Context, id uuid.UUID) (*domain.Photo, error)
	// GetPhotoImage возвращает сохраненные байты изображения; ok=false если их еще нет
	GetPhotoImage(ctx context.Context, id uuid.UUID) (data []byte, ok bool, err error)
	// SavePhotoImage сохраняет байты изображения ровно один раз; повторная запись игнорируется
	SavePhotoImage(ctx context.Context, id uuid.UUID, data []byte) error
	DeletePhoto(ctx context.Context, id uuid.UUID) error
}

// Storage это полный контракт локального хранилища
type Storage interface {
	PlaceStorage
	PhotoStorage
	Close() error
}

// BlobStorage определяет методы для хранения бинарных данных (S3, MinIO)
type BlobStorage interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
	GetFile(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, key string) error
}

// PlaceLocker задает критическую секцию с одним писателем для каждого места
type PlaceLocker interface {
	// TryLock пытается захватить место; ok=false если оно уже занято
	TryLock(ctx context.Context, placeID uuid.UUID) (unlock func(), ok bool, err error)
}

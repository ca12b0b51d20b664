package domain

import (
	"time"

	"github.com/google/uuid"
)

// Photo представляет фотографию из альбома места,
// соответствует таблице photos в бд
type Photo struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PlaceID   uuid.UUID `json:"place_id" db:"place_id"`
	RemoteURL string    `json:"remote_url" db:"remote_url"`
	Position  int       `json:"position" db:"position"`
	HasImage  bool      `json:"has_image" db:"has_image"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Image заполняется только когда байты изображения уже загружены в память
	Image []byte `json:"-" db:"-"`
}

// Cached сообщает, есть ли у фото байты изображения в памяти
func (p Photo) Cached() bool {
	return len(p.Image) > 0
}

// PhotoStub это одна запись из ответа поиска: пока только URL изображения
type PhotoStub struct {
	RemoteURL string
}

// SearchPage это одна страница результатов поиска фото у провайдера
type SearchPage struct {
	Pages  int
	Photos []PhotoStub
}

// NewAlbum создает новый набор фото для места из результатов поиска (без байтов изображения)
func NewAlbum(placeID uuid.UUID, stubs []PhotoStub) []Photo {
	now := time.Now().UTC()
	photos := make([]Photo, 0, len(stubs))
	for i, stub := range stubs {
		photos = append(photos, Photo{
			ID:        uuid.New(),
			PlaceID:   placeID,
			RemoteURL: stub.RemoteURL,
			Position:  i,
			CreatedAt: now,
		})
	}
	return photos
}

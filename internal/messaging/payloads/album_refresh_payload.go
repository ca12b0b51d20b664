package payloads

import "github.com/google/uuid"

// AlbumRefreshPayload представляет запрос на обновление альбома места через RabbitMQ.
type AlbumRefreshPayload struct {
	PlaceID uuid.UUID `json:"place_id"`
}

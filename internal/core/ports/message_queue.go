package ports

import (
	"context"

	"github.com/GoArmGo/PinAlbum/internal/messaging/payloads"
)

// AlbumRefreshPublisher определяет методы для публикации запросов на обновление альбома
// Этот интерфейс используется обработчиком HTTP-запросов
type AlbumRefreshPublisher interface {
	PublishAlbumRefresh(ctx context.Context, payload payloads.AlbumRefreshPayload) error
}

// AlbumRefreshConsumer определяет методы для потребления запросов на обновление альбома,
// используется воркером
type AlbumRefreshConsumer interface {
	// StartConsumingAlbumRefresh начинает прослушивание очереди;
	// handler вызывается для каждого полученного сообщения
	StartConsumingAlbumRefresh(ctx context.Context, handler func(context.Context, payloads.AlbumRefreshPayload) error) error
}

package domain

import (
	"errors"
	"fmt"
)

// Базовые виды ошибок синхронизации альбома
var (
	// ErrNetwork транспортная ошибка, повторяется действием пользователя
	ErrNetwork = errors.New("network error")

	// ErrServer провайдер вернул неуспешный статус
	ErrServer = errors.New("server error")

	// ErrDatabase ошибка локального хранилища
	ErrDatabase = errors.New("database error")

	// ErrUnknown неожиданный формат ответа
	ErrUnknown = errors.New("unknown error")
)

var (
	ErrPlaceNotFound  = errors.New("place not found")
	ErrPhotoNotFound  = errors.New("photo not found")
	ErrInvalidPlace   = errors.New("invalid place")
	ErrSyncInProgress = errors.New("album sync already in progress")

	// ErrInvalidImage байты не являются изображением; это тоже ErrUnknown
	ErrInvalidImage = fmt.Errorf("%w: invalid image data", ErrUnknown)
)

// UserMessage возвращает текст ошибки, который можно показать пользователю
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNetwork):
		return "Please check your network."
	case errors.Is(err, ErrServer):
		return "Server messed up."
	case errors.Is(err, ErrDatabase):
		return "Database Error."
	case errors.Is(err, ErrSyncInProgress):
		return "Album is already loading."
	case errors.Is(err, ErrPlaceNotFound), errors.Is(err, ErrPhotoNotFound):
		return "Not found."
	case errors.Is(err, ErrInvalidPlace):
		return "Invalid place."
	default:
		return "Unknown error"
	}
}

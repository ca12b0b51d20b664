package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/PinAlbum/internal/album"
	"github.com/GoArmGo/PinAlbum/internal/core/ports"
	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/GoArmGo/PinAlbum/internal/messaging/payloads"
	"github.com/GoArmGo/PinAlbum/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PlaceHandler обработчик HTTP-запросов для мест, альбомов и фото.
type PlaceHandler struct {
	placeUseCase     usecase.PlaceUseCase
	albums           *album.Registry
	images           usecase.ImageResolver
	refreshPublisher ports.AlbumRefreshPublisher
	logger           *slog.Logger
}

// NewPlaceHandler создаёт новый экземпляр PlaceHandler.
// publisher может быть nil: тогда асинхронное обновление альбома недоступно.
func NewPlaceHandler(
	uc usecase.PlaceUseCase,
	albums *album.Registry,
	images usecase.ImageResolver,
	publisher ports.AlbumRefreshPublisher,
	logger *slog.Logger,
) *PlaceHandler {
	return &PlaceHandler{
		placeUseCase:     uc,
		albums:           albums,
		images:           images,
		refreshPublisher: publisher,
		logger:           logger,
	}
}

// Register регистрирует маршруты обработчика
func (h *PlaceHandler) Register(r chi.Router) {
	r.Route("/places", func(r chi.Router) {
		r.Post("/", h.CreatePlace)
		r.Get("/", h.ListPlaces)
		r.Get("/lookup", h.FindPlaceByLabel)
		r.Route("/{placeID}", func(r chi.Router) {
			r.Get("/", h.GetPlace)
			r.Delete("/", h.DeletePlace)
			r.Get("/photos", h.ListPhotos)
			r.Get("/album", h.OpenAlbum)
			r.Post("/album/refresh", h.RefreshAlbum)
		})
	})
	r.Route("/photos/{photoID}", func(r chi.Router) {
		r.Get("/", h.GetPhoto)
		r.Get("/image", h.GetPhotoImage)
		r.Delete("/", h.DeletePhoto)
	})
}

// respondWithJSON отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// respondWithDomainError подбирает код ответа по виду ошибки и показывает пользовательский текст
func respondWithDomainError(w http.ResponseWriter, err error, logger *slog.Logger) {
	respondWithError(w, statusFor(err), domain.UserMessage(err), logger)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidPlace):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPlaceNotFound), errors.Is(err, domain.ErrPhotoNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSyncInProgress):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrServer), errors.Is(err, domain.ErrUnknown):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func parseID(r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	return id, err == nil
}

type createPlaceRequest struct {
	LocationString string   `json:"location_string"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

// CreatePlace создаёт место по подписи и координатам.
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var req createPlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "endpoint", "CreatePlace", "error", err)
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", h.logger)
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		h.logger.Warn("missing required parameter", "param", "latitude/longitude")
		respondWithError(w, http.StatusBadRequest, "Не указаны координаты", h.logger)
		return
	}

	place, err := h.placeUseCase.CreatePlace(r.Context(), req.LocationString, *req.Latitude, *req.Longitude)
	if err != nil {
		h.logger.Error("failed to create place", "label", req.LocationString, "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("place created", "place_id", place.ID, "label", place.LocationString)
	respondWithJSON(w, http.StatusCreated, place, h.logger)
}

// ListPlaces возвращает места; параметр q фильтрует их по подписи.
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.placeUseCase.ListPlaces(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.logger.Error("failed to list places", "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, places, h.logger)
}

// FindPlaceByLabel ищет место по точной подписи.
func (h *PlaceHandler) FindPlaceByLabel(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("label")
	if label == "" {
		h.logger.Warn("missing required parameter", "param", "label")
		respondWithError(w, http.StatusBadRequest, "Не указан label", h.logger)
		return
	}

	place, err := h.placeUseCase.FindPlaceByLabel(r.Context(), label)
	if err != nil {
		if !errors.Is(err, domain.ErrPlaceNotFound) {
			h.logger.Error("failed to find place", "label", label, "error", err)
		}
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, place, h.logger)
}

// GetPlace возвращает место по id.
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	placeID, ok := parseID(r, "placeID")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Некорректный placeID", h.logger)
		return
	}

	place, err := h.placeUseCase.GetPlace(r.Context(), placeID)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, place, h.logger)
}

// ListPhotos возвращает сохраненные фото места без открытия альбома.
func (h *PlaceHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	placeID, ok := parseID(r, "placeID")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Некорректный placeID", h.logger)
		return
	}

	photos, err := h.placeUseCase.ListPhotos(r.Context(), placeID)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, photos, h.logger)
}

// DeletePlace удаляет место вместе с фото и закрывает его альбом.
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	placeID, ok := parseID(r, "placeID")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Некорректный placeID", h.logger)
		return
	}

	if err := h.placeUseCase.DeletePlace(r.Context(), placeID); err != nil {
		h.logger.Error("failed to delete place", "place_id", placeID, "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}
	h.albums.Drop(placeID)

	h.logger.Info("place deleted", "place_id", placeID)
	w.WriteHeader(http.StatusNoContent)
}

// OpenAlbum открывает альбом места и возвращает его состояние.
// С images=true дожидается получения всех изображений.
func (h *PlaceHandler) OpenAlbum(w http.ResponseWriter, r *http.Request) {
	placeID, ok := parseID(r, "placeID")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Некорректный placeID", h.logger)
		return
	}

	vm, err := h.albums.Open(r.Context(), placeID)
	if err != nil {
		if errors.Is(err, domain.ErrPlaceNotFound) {
			h.albums.Drop(placeID)
			respondWithDomainError(w, err, h.logger)
			return
		}
		if errors.Is(err, album.ErrClosed) {
			respondWithError(w, http.StatusServiceUnavailable, "Альбом закрыт", h.logger)
			return
		}
		// ошибка уже записана в снимок, альбом показывается с прежним содержимым
		h.logger.Warn("album opened with error", "place_id", placeID, "error", err)
	}

	if resolve, _ := strconv.ParseBool(r.URL.Query().Get("images")); resolve {
		if err := vm.ResolveAll(r.Context()); err != nil {
			h.logger.Warn("album images not resolved", "place_id", placeID, "error", err)
		}
	}
	respondWithJSON(w, http.StatusOK, vm.Snapshot(), h.logger)
}

// RefreshAlbum заменяет альбом новой страницей результатов.
// С async=true ставит задачу в очередь воркера.
func (h *PlaceHandler) RefreshAlbum(w http.ResponseWriter, r *http.Request) {
	placeID, ok := parseID(r, "placeID")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Некорректный placeID", h.logger)
		return
	}

	if async, _ := strconv.ParseBool(r.URL.Query().Get("async")); async {
		h.enqueueRefresh(w, r, placeID)
		return
	}

	vm := h.albums.Get(placeID)
	if err := vm.Refresh(r.Context()); err != nil {
		h.logger.Warn("album refresh failed", "place_id", placeID, "error", err)
		if errors.Is(err, domain.ErrPlaceNotFound) {
			h.albums.Drop(placeID)
		}
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("album refreshed", "place_id", placeID)
	respondWithJSON(w, http.StatusOK, vm.Snapshot(), h.logger)
}

func (h *PlaceHandler) enqueueRefresh(w http.ResponseWriter, r *http.Request, placeID uuid.UUID) {
	if h.refreshPublisher == nil {
		respondWithError(w, http.StatusServiceUnavailable, "Очередь обновлений не настроена", h.logger)
		return
	}
	if _, err := h.placeUseCase.GetPlace(r.Context(), placeID); err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	if err := h.refreshPublisher.PublishAlbumRefresh(r.Context(), payloads.AlbumRefreshPayload{PlaceID: placeID}); err != nil {
		h.logger.Error("failed to enqueue album refresh", "place_id", placeID, "error", err)
		respondWithError(w, http.StatusServiceUnavailable, "Не удалось поставить задачу в очередь", h.logger)
		return
	}

	h.logger.Info("album refresh enqueued", "place_id", placeID)
	respondWithJSON(w, http.StatusAccepted, map[string]string{"status": "queued"}, h.logger)
}

// GetPhoto возвращает запись фото.
func (h *PlaceHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	photoID, ok := parseID(r, "photoID")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Некорректный photoID", h.logger)
		return
	}

	photo, err := h.placeUseCase.GetPhoto(r.Context(), photoID)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, photo, h.logger)
}

// GetPhotoImage отдает PNG изображения фото, скачивая его при первом обращении.
func (h *PlaceHandler) GetPhotoImage(w http.ResponseWriter, r *http.Request) {
	photoID, ok := parseID(r, "photoID")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Некорректный photoID", h.logger)
		return
	}

	photo, err := h.placeUseCase.GetPhoto(r.Context(), photoID)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	data, err := h.resolveImage(r, photo)
	if err != nil {
		h.logger.Warn("failed to resolve photo image", "photo_id", photoID, "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write HTTP response", "error", err)
	}
}

// resolveImage идет через открытый альбом места, чтобы засчитать загрузку
func (h *PlaceHandler) resolveImage(r *http.Request, photo *domain.Photo) ([]byte, error) {
	if vm, ok := h.albums.Lookup(photo.PlaceID); ok {
		data, err := vm.ResolveImage(r.Context(), photo.ID)
		if !errors.Is(err, domain.ErrPhotoNotFound) && !errors.Is(err, album.ErrClosed) {
			return data, err
		}
	}
	return h.images.Resolve(r.Context(), *photo)
}

// DeletePhoto удаляет одно фото из альбома.
func (h *PlaceHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	photoID, ok := parseID(r, "photoID")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Некорректный photoID", h.logger)
		return
	}

	photo, err := h.placeUseCase.GetPhoto(r.Context(), photoID)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	if vm, ok := h.albums.Lookup(photo.PlaceID); ok {
		err = vm.DeletePhoto(r.Context(), photoID)
	} else {
		err = h.placeUseCase.DeletePhoto(r.Context(), photoID)
	}
	if err != nil {
		h.logger.Error("failed to delete photo", "photo_id", photoID, "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("photo deleted", "photo_id", photoID, "place_id", photo.PlaceID)
	w.WriteHeader(http.StatusNoContent)
}

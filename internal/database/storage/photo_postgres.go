package storage

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/google/uuid"
)

const photoColumns = `id, place_id, remote_url, position, image_key IS NOT NULL AS has_image, created_at`

// ListPhotos возвращает фото места в порядке position
func (s *PostgresStorage) ListPhotos(ctx context.Context, placeID uuid.UUID) ([]domain.Photo, error) {
	start := time.Now()

	var exists bool
	if err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM places WHERE id = $1)`, placeID); err != nil {
		return nil, dbError("check place", err)
	}
	if !exists {
		return nil, domain.ErrPlaceNotFound
	}

	photos := []domain.Photo{}
	query := `SELECT ` + photoColumns + ` FROM photos WHERE place_id = $1 ORDER BY position`
	if err := s.db.SelectContext(ctx, &photos, query, placeID); err != nil {
		s.logger.Error("failed to list photos", "place_id", placeID, "error", err)
		return nil, dbError("list photos", err)
	}

	s.logger.Debug("listed photos",
		"place_id", placeID,
		"count", len(photos),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return photos, nil
}

// GetPhoto получает фото по ID
func (s *PostgresStorage) GetPhoto(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	var photo domain.Photo
	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = $1`

	if err := s.db.GetContext(ctx, &photo, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		s.logger.Error("failed to get photo", "id", id, "error", err)
		return nil, dbError("get photo", err)
	}
	return &photo, nil
}

func (s *PostgresStorage) imageKey(ctx context.Context, id uuid.UUID) (sql.NullString, error) {
	var key sql.NullString
	err := s.db.GetContext(ctx, &key, `SELECT image_key FROM photos WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return key, domain.ErrPhotoNotFound
		}
		return key, dbError("get image key", err)
	}
	return key, nil
}

// GetPhotoImage читает байты изображения из BlobStorage; ok=false если изображение еще не сохранено
func (s *PostgresStorage) GetPhotoImage(ctx context.Context, id uuid.UUID) ([]byte, bool, error) {
	key, err := s.imageKey(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !key.Valid {
		return nil, false, nil
	}

	body, err := s.blobs.GetFile(ctx, key.String)
	if err != nil {
		return nil, false, dbError("get image object", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, false, dbError("read image object", err)
	}
	return data, true, nil
}

// SavePhotoImage загружает изображение и привязывает его к фото, только если у фото еще нет изображения.
// Каждая загрузка получает свой ключ, поэтому проигравший гонку объект можно безопасно удалить.
func (s *PostgresStorage) SavePhotoImage(ctx context.Context, id uuid.UUID, data []byte) error {
	start := time.Now()

	key, err := s.imageKey(ctx, id)
	if err != nil {
		return err
	}
	if key.Valid {
		return nil
	}

	objectKey := fmt.Sprintf("photos/%s/%s.png", id, uuid.New())
	if _, err := s.blobs.UploadFile(ctx, objectKey, bytes.NewReader(data), "image/png"); err != nil {
		s.logger.Error("failed to upload image", "photo_id", id, "error", err)
		return dbError("upload image", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE photos SET image_key = $1 WHERE id = $2 AND image_key IS NULL`, objectKey, id)
	if err != nil {
		s.deleteBlobs(ctx, []string{objectKey})
		return dbError("set image key", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbError("rows affected", err)
	}
	if n == 0 {
		// фото удалено или изображение уже сохранено параллельно
		s.deleteBlobs(ctx, []string{objectKey})
		if _, err := s.imageKey(ctx, id); err != nil {
			return err
		}
		return nil
	}

	s.logger.Info("photo image saved",
		"photo_id", id,
		"bytes", len(data),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// DeletePhoto удаляет одно фото; место и остальные фото не затрагиваются
func (s *PostgresStorage) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	var key sql.NullString
	err := s.db.GetContext(ctx, &key, `DELETE FROM photos WHERE id = $1 RETURNING image_key`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrPhotoNotFound
		}
		s.logger.Error("failed to delete photo", "id", id, "error", err)
		return dbError("delete photo", err)
	}

	if key.Valid {
		s.deleteBlobs(ctx, []string{key.String})
	}
	s.logger.Info("photo deleted", "id", id)
	return nil
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const placeColumns = `id, location_string, latitude, longitude, page_count, created_at`

// CreatePlace сохраняет новое место
func (s *PostgresStorage) CreatePlace(ctx context.Context, place *domain.Place) error {
	start := time.Now()

	query := `
	INSERT INTO places (id, location_string, latitude, longitude, page_count, created_at)
	VALUES (:id, :location_string, :latitude, :longitude, :page_count, :created_at)
	`

	if _, err := s.db.NamedExecContext(ctx, query, place); err != nil {
		s.logger.Error("failed to create place", "label", place.LocationString, "error", err)
		return dbError("create place", err)
	}

	s.logger.Info("place created",
		"id", place.ID,
		"label", place.LocationString,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetPlace получает место по ID
func (s *PostgresStorage) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	var place domain.Place
	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1`

	if err := s.db.GetContext(ctx, &place, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaceNotFound
		}
		s.logger.Error("failed to get place", "id", id, "error", err)
		return nil, dbError("get place", err)
	}
	return &place, nil
}

// FindPlaceByLabel ищет место по точной подписи; при дублях возвращает самое раннее
func (s *PostgresStorage) FindPlaceByLabel(ctx context.Context, label string) (*domain.Place, error) {
	var place domain.Place
	query := `SELECT ` + placeColumns + ` FROM places WHERE location_string = $1 ORDER BY created_at LIMIT 1`

	if err := s.db.GetContext(ctx, &place, query, label); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaceNotFound
		}
		s.logger.Error("failed to find place by label", "label", label, "error", err)
		return nil, dbError("find place by label", err)
	}
	return &place, nil
}

// ListPlaces возвращает все места в порядке создания
func (s *PostgresStorage) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	start := time.Now()

	places := []domain.Place{}
	query := `SELECT ` + placeColumns + ` FROM places ORDER BY created_at`

	if err := s.db.SelectContext(ctx, &places, query); err != nil {
		s.logger.Error("failed to list places", "error", err)
		return nil, dbError("list places", err)
	}

	s.logger.Debug("listed places",
		"count", len(places),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return places, nil
}

// DeletePlace удаляет место; фото удаляются каскадно, их изображения после коммита
func (s *PostgresStorage) DeletePlace(ctx context.Context, id uuid.UUID) error {
	var keys []string
	err := s.withTx(ctx, "delete place", func(tx *sqlx.Tx) error {
		var err error
		keys, err = imageKeysOf(ctx, tx, id)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM places WHERE id = $1`, id)
		if err != nil {
			return dbError("delete place", err)
		}
		return requireAffected(res, domain.ErrPlaceNotFound)
	})
	if err != nil {
		return err
	}

	s.deleteBlobs(ctx, keys)
	s.logger.Info("place deleted", "id", id, "images", len(keys))
	return nil
}

// ReplaceAlbum в одной транзакции обновляет page_count и заменяет все фото места
func (s *PostgresStorage) ReplaceAlbum(ctx context.Context, placeID uuid.UUID, pageCount int, photos []domain.Photo) error {
	start := time.Now()

	var keys []string
	err := s.withTx(ctx, "replace album", func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `UPDATE places SET page_count = $1 WHERE id = $2`, pageCount, placeID)
		if err != nil {
			return dbError("update page count", err)
		}
		if err := requireAffected(res, domain.ErrPlaceNotFound); err != nil {
			return err
		}

		keys, err = imageKeysOf(ctx, tx, placeID)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM photos WHERE place_id = $1`, placeID); err != nil {
			return dbError("delete old photos", err)
		}

		for _, p := range photos {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO photos (id, place_id, remote_url, position, created_at) VALUES ($1, $2, $3, $4, $5)`,
				p.ID, placeID, p.RemoteURL, p.Position, p.CreatedAt,
			)
			if err != nil {
				return dbError("insert photo", err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to replace album", "place_id", placeID, "error", err)
		return err
	}

	s.deleteBlobs(ctx, keys)
	s.logger.Info("album replaced",
		"place_id", placeID,
		"page_count", pageCount,
		"photos", len(photos),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func imageKeysOf(ctx context.Context, tx *sqlx.Tx, placeID uuid.UUID) ([]string, error) {
	var keys []string
	err := tx.SelectContext(ctx, &keys,
		`SELECT image_key FROM photos WHERE place_id = $1 AND image_key IS NOT NULL`, placeID)
	if err != nil {
		return nil, dbError("select image keys", err)
	}
	return keys, nil
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return dbError("rows affected", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/PinAlbum/internal/core/ports"
	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/jmoiron/sqlx"
)

// PostgresStorage хранит места и фото в PostgreSQL, а байты изображений в BlobStorage.
// Реализует ports.Storage.
type PostgresStorage struct {
	db     *sqlx.DB
	blobs  ports.BlobStorage
	logger *slog.Logger
}

func NewPostgresStorage(db *sqlx.DB, blobs ports.BlobStorage, logger *slog.Logger) *PostgresStorage {
	return &PostgresStorage{db: db, blobs: blobs, logger: logger}
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

// dbError оборачивает ошибку драйвера в domain.ErrDatabase
func dbError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrDatabase, op, err)
}

// withTx выполняет fn в транзакции: commit при успехе, rollback при любой ошибке
func (s *PostgresStorage) withTx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return dbError(op+": begin", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("transaction rollback failed", "op", op, "error", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return dbError(op+": commit", err)
	}
	return nil
}

// deleteBlobs удаляет изображения после коммита; ошибка только логируется,
// записи в бд уже удалены и на объекты больше никто не ссылается
func (s *PostgresStorage) deleteBlobs(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.blobs.DeleteFile(ctx, key); err != nil {
			s.logger.Warn("failed to delete orphaned image", "key", key, "error", err)
		}
	}
}

package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketPlaces      = []byte("places")
	bucketPhotos      = []byte("photos")
	bucketPlacePhotos = []byte("place_photos") // "<placeID>:<position>" -> photoID
	bucketImages      = []byte("images")       // photoID -> image bytes
)

// Store хранит места и фото в локальном файле BoltDB.
// Каждая мутация выполняется в одной транзакции db.Update.
type Store struct {
	db     *bolt.DB
	logger *slog.Logger
}

// Open открывает (или создает) файл БД и нужные бакеты
func Open(path string, logger *slog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: create data dir: %w", domain.ErrDatabase, err)
		}
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: open bolt db: %w", domain.ErrDatabase, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketPlaces, bucketPhotos, bucketPlacePhotos, bucketImages} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create buckets: %w", domain.ErrDatabase, err)
	}

	logger.Info("bolt store opened", "path", path)
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// === Key helpers ===

func placeIndexPrefix(placeID uuid.UUID) []byte {
	return []byte(placeID.String() + ":")
}

func placeIndexKey(placeID uuid.UUID, position int) []byte {
	return []byte(fmt.Sprintf("%s:%06d", placeID.String(), position))
}

func idKey(id uuid.UUID) []byte {
	return []byte(id.String())
}

// update оборачивает db.Update: любая ошибка транзакции это ErrDatabase,
// кроме доменных ошибок "не найдено"
func (s *Store) update(op string, fn func(tx *bolt.Tx) error) error {
	start := time.Now()
	err := s.db.Update(fn)
	if err != nil {
		if errors.Is(err, domain.ErrPlaceNotFound) || errors.Is(err, domain.ErrPhotoNotFound) {
			return err
		}
		s.logger.Error("bolt update failed", "op", op, "error", err)
		return fmt.Errorf("%w: %s: %w", domain.ErrDatabase, op, err)
	}
	s.logger.Debug("bolt update", "op", op, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func (s *Store) view(op string, fn func(tx *bolt.Tx) error) error {
	err := s.db.View(fn)
	if err != nil {
		if errors.Is(err, domain.ErrPlaceNotFound) || errors.Is(err, domain.ErrPhotoNotFound) {
			return err
		}
		return fmt.Errorf("%w: %s: %w", domain.ErrDatabase, op, err)
	}
	return nil
}

func readPlace(tx *bolt.Tx, id uuid.UUID) (*domain.Place, error) {
	v := tx.Bucket(bucketPlaces).Get(idKey(id))
	if v == nil {
		return nil, domain.ErrPlaceNotFound
	}
	var p domain.Place
	if err := json.Unmarshal(v, &p); err != nil {
		return nil, fmt.Errorf("decode place %s: %w", id, err)
	}
	return &p, nil
}

func writePlace(tx *bolt.Tx, p *domain.Place) error {
	rec := *p
	rec.Photos = nil
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return tx.Bucket(bucketPlaces).Put(idKey(p.ID), data)
}

func readPhoto(tx *bolt.Tx, id uuid.UUID) (*domain.Photo, error) {
	v := tx.Bucket(bucketPhotos).Get(idKey(id))
	if v == nil {
		return nil, domain.ErrPhotoNotFound
	}
	var p domain.Photo
	if err := json.Unmarshal(v, &p); err != nil {
		return nil, fmt.Errorf("decode photo %s: %w", id, err)
	}
	p.HasImage = tx.Bucket(bucketImages).Get(idKey(id)) != nil
	return &p, nil
}

// deletePhotoTx удаляет фото, его запись в индексе места и байты изображения
func deletePhotoTx(tx *bolt.Tx, p *domain.Photo) error {
	if err := tx.Bucket(bucketPlacePhotos).Delete(placeIndexKey(p.PlaceID, p.Position)); err != nil {
		return err
	}
	if err := tx.Bucket(bucketImages).Delete(idKey(p.ID)); err != nil {
		return err
	}
	return tx.Bucket(bucketPhotos).Delete(idKey(p.ID))
}

// photoIDsOf возвращает id фото места в порядке позиции (ключи индекса отсортированы)
func photoIDsOf(tx *bolt.Tx, placeID uuid.UUID) ([]uuid.UUID, error) {
	prefix := placeIndexPrefix(placeID)
	var ids []uuid.UUID
	c := tx.Bucket(bucketPlacePhotos).Cursor()
	for k, v := c.Seek(prefix); k != nil && hasPrefix(k, prefix); k, v = c.Next() {
		id, err := uuid.ParseBytes(v)
		if err != nil {
			return nil, fmt.Errorf("decode photo index %q: %w", k, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func hasPrefix(k, prefix []byte) bool {
	return len(k) >= len(prefix) && string(k[:len(prefix)]) == string(prefix)
}

// === Places ===

func (s *Store) CreatePlace(ctx context.Context, place *domain.Place) error {
	return s.update("create place", func(tx *bolt.Tx) error {
		return writePlace(tx, place)
	})
}

func (s *Store) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	var place *domain.Place
	err := s.view("get place", func(tx *bolt.Tx) error {
		p, err := readPlace(tx, id)
		if err != nil {
			return err
		}
		place = p
		return nil
	})
	return place, err
}

// FindPlaceByLabel ищет место по точному совпадению подписи; при дублях возвращает самое раннее
func (s *Store) FindPlaceByLabel(ctx context.Context, label string) (*domain.Place, error) {
	places, err := s.ListPlaces(ctx)
	if err != nil {
		return nil, err
	}
	for i := range places {
		if places[i].LocationString == label {
			return &places[i], nil
		}
	}
	return nil, domain.ErrPlaceNotFound
}

// ListPlaces возвращает все места в порядке создания
func (s *Store) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	places := []domain.Place{}
	err := s.view("list places", func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPlaces).ForEach(func(k, v []byte) error {
			var p domain.Place
			if err := json.Unmarshal(v, &p); err != nil {
				return fmt.Errorf("decode place %s: %w", k, err)
			}
			places = append(places, p)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(places, func(i, j int) bool {
		return places[i].CreatedAt.Before(places[j].CreatedAt)
	})
	return places, nil
}

func (s *Store) DeletePlace(ctx context.Context, id uuid.UUID) error {
	return s.update("delete place", func(tx *bolt.Tx) error {
		if _, err := readPlace(tx, id); err != nil {
			return err
		}
		if err := deleteAlbumTx(tx, id); err != nil {
			return err
		}
		return tx.Bucket(bucketPlaces).Delete(idKey(id))
	})
}

func deleteAlbumTx(tx *bolt.Tx, placeID uuid.UUID) error {
	ids, err := photoIDsOf(tx, placeID)
	if err != nil {
		return err
	}
	for _, photoID := range ids {
		p, err := readPhoto(tx, photoID)
		if errors.Is(err, domain.ErrPhotoNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := deletePhotoTx(tx, p); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceAlbum обновляет pageCount и заменяет набор фото места в одной транзакции.
// При ошибке транзакция откатывается и прежний альбом остается нетронутым.
func (s *Store) ReplaceAlbum(ctx context.Context, placeID uuid.UUID, pageCount int, photos []domain.Photo) error {
	return s.update("replace album", func(tx *bolt.Tx) error {
		place, err := readPlace(tx, placeID)
		if err != nil {
			return err
		}

		if err := deleteAlbumTx(tx, placeID); err != nil {
			return err
		}

		place.PageCount = pageCount
		if err := writePlace(tx, place); err != nil {
			return err
		}

		for _, p := range photos {
			rec := p
			rec.PlaceID = placeID
			rec.HasImage = false
			rec.Image = nil
			data, err := json.Marshal(rec)
			if err != nil {
				return err
			}
			if err := tx.Bucket(bucketPhotos).Put(idKey(rec.ID), data); err != nil {
				return err
			}
			if err := tx.Bucket(bucketPlacePhotos).Put(placeIndexKey(placeID, rec.Position), idKey(rec.ID)); err != nil {
				return err
			}
		}
		return nil
	})
}

// === Photos ===

func (s *Store) ListPhotos(ctx context.Context, placeID uuid.UUID) ([]domain.Photo, error) {
	photos := []domain.Photo{}
	err := s.view("list photos", func(tx *bolt.Tx) error {
		if _, err := readPlace(tx, placeID); err != nil {
			return err
		}
		ids, err := photoIDsOf(tx, placeID)
		if err != nil {
			return err
		}
		for _, id := range ids {
			p, err := readPhoto(tx, id)
			if errors.Is(err, domain.ErrPhotoNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			photos = append(photos, *p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *Store) GetPhoto(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	var photo *domain.Photo
	err := s.view("get photo", func(tx *bolt.Tx) error {
		p, err := readPhoto(tx, id)
		if err != nil {
			return err
		}
		photo = p
		return nil
	})
	return photo, err
}

func (s *Store) GetPhotoImage(ctx context.Context, id uuid.UUID) ([]byte, bool, error) {
	var data []byte
	err := s.view("get photo image", func(tx *bolt.Tx) error {
		if tx.Bucket(bucketPhotos).Get(idKey(id)) == nil {
			return domain.ErrPhotoNotFound
		}
		if v := tx.Bucket(bucketImages).Get(idKey(id)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return data, data != nil, nil
}

// SavePhotoImage записывает байты только если их еще нет: уже сохраненное изображение не перезаписывается
func (s *Store) SavePhotoImage(ctx context.Context, id uuid.UUID, data []byte) error {
	return s.update("save photo image", func(tx *bolt.Tx) error {
		if tx.Bucket(bucketPhotos).Get(idKey(id)) == nil {
			return domain.ErrPhotoNotFound
		}
		images := tx.Bucket(bucketImages)
		if images.Get(idKey(id)) != nil {
			return nil
		}
		return images.Put(idKey(id), data)
	})
}

func (s *Store) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	return s.update("delete photo", func(tx *bolt.Tx) error {
		p, err := readPhoto(tx, id)
		if err != nil {
			return err
		}
		return deletePhotoTx(tx, p)
	})
}

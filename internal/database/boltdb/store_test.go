package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/GoArmGo/PinAlbum/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "test.db"), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func createPlace(t *testing.T, s *Store, label string) *domain.Place {
	t.Helper()
	p, err := domain.NewPlace(label, 48.85, 2.35, 133)
	require.NoError(t, err)
	require.NoError(t, s.CreatePlace(context.Background(), p))
	return p
}

func stubs(urls ...string) []domain.PhotoStub {
	out := make([]domain.PhotoStub, 0, len(urls))
	for _, u := range urls {
		out = append(out, domain.PhotoStub{RemoteURL: u})
	}
	return out
}

func TestStore_PlaceCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	paris := createPlace(t, s, "Paris, Ile-de-France")
	lyon := createPlace(t, s, "Lyon, Auvergne")

	got, err := s.GetPlace(ctx, paris.ID)
	require.NoError(t, err)
	assert.Equal(t, paris.LocationString, got.LocationString)
	assert.Equal(t, 133, got.PageCount)

	places, err := s.ListPlaces(ctx)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, paris.ID, places[0].ID)
	assert.Equal(t, lyon.ID, places[1].ID)

	found, err := s.FindPlaceByLabel(ctx, "Lyon, Auvergne")
	require.NoError(t, err)
	assert.Equal(t, lyon.ID, found.ID)

	_, err = s.FindPlaceByLabel(ctx, "Lyon")
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)

	_, err = s.GetPlace(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
}

func TestStore_ReplaceAlbum(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	place := createPlace(t, s, "Paris")

	first := domain.NewAlbum(place.ID, stubs("http://x/a.jpg", "http://x/b.jpg", "http://x/c.jpg"))
	require.NoError(t, s.ReplaceAlbum(ctx, place.ID, 3, first))
	require.NoError(t, s.SavePhotoImage(ctx, first[0].ID, []byte("png")))

	photos, err := s.ListPhotos(ctx, place.ID)
	require.NoError(t, err)
	require.Len(t, photos, 3)
	assert.Equal(t, "http://x/a.jpg", photos[0].RemoteURL)
	assert.Equal(t, "http://x/c.jpg", photos[2].RemoteURL)
	assert.True(t, photos[0].HasImage)
	assert.False(t, photos[1].HasImage)

	second := domain.NewAlbum(place.ID, stubs("http://x/d.jpg"))
	require.NoError(t, s.ReplaceAlbum(ctx, place.ID, 2, second))

	photos, err = s.ListPhotos(ctx, place.ID)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, "http://x/d.jpg", photos[0].RemoteURL)

	got, err := s.GetPlace(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.PageCount)

	// старые фото и их изображения удалены
	_, err = s.GetPhoto(ctx, first[0].ID)
	assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
	_, _, err = s.GetPhotoImage(ctx, first[0].ID)
	assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
}

func TestStore_ReplaceAlbum_UnknownPlace(t *testing.T) {
	s := newTestStore(t)
	err := s.ReplaceAlbum(context.Background(), uuid.New(), 1, nil)
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
}

func TestStore_SavePhotoImage_WriteOnce(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	place := createPlace(t, s, "Paris")
	album := domain.NewAlbum(place.ID, stubs("http://x/a.jpg"))
	require.NoError(t, s.ReplaceAlbum(ctx, place.ID, 1, album))

	data, ok, err := s.GetPhotoImage(ctx, album[0].ID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)

	require.NoError(t, s.SavePhotoImage(ctx, album[0].ID, []byte("first")))
	require.NoError(t, s.SavePhotoImage(ctx, album[0].ID, []byte("second")))

	data, ok, err = s.GetPhotoImage(ctx, album[0].ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("first"), data)

	err = s.SavePhotoImage(ctx, uuid.New(), []byte("x"))
	assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
}

func TestStore_DeletePhoto(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	place := createPlace(t, s, "Paris")
	album := domain.NewAlbum(place.ID, stubs("http://x/a.jpg", "http://x/b.jpg"))
	require.NoError(t, s.ReplaceAlbum(ctx, place.ID, 1, album))

	require.NoError(t, s.DeletePhoto(ctx, album[0].ID))

	photos, err := s.ListPhotos(ctx, place.ID)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, album[1].ID, photos[0].ID)

	_, err = s.GetPlace(ctx, place.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, s.DeletePhoto(ctx, album[0].ID), domain.ErrPhotoNotFound)
}

func TestStore_DeletePlace_Cascades(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	place := createPlace(t, s, "Paris")
	other := createPlace(t, s, "Rome")

	album := domain.NewAlbum(place.ID, stubs("http://x/a.jpg", "http://x/b.jpg"))
	require.NoError(t, s.ReplaceAlbum(ctx, place.ID, 1, album))
	otherAlbum := domain.NewAlbum(other.ID, stubs("http://x/r.jpg"))
	require.NoError(t, s.ReplaceAlbum(ctx, other.ID, 1, otherAlbum))

	require.NoError(t, s.DeletePlace(ctx, place.ID))

	_, err := s.GetPlace(ctx, place.ID)
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
	for _, p := range album {
		_, err := s.GetPhoto(ctx, p.ID)
		assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
	}

	photos, err := s.ListPhotos(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, photos, 1)

	assert.ErrorIs(t, s.DeletePlace(ctx, place.ID), domain.ErrPlaceNotFound)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path, logger.Discard())
	require.NoError(t, err)
	place, err := domain.NewPlace("Paris", 1, 2, 133)
	require.NoError(t, err)
	require.NoError(t, s.CreatePlace(ctx, place))
	require.NoError(t, s.Close())

	s, err = Open(path, logger.Discard())
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetPlace(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paris", got.LocationString)
}

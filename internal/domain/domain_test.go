package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlace(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		lat, lon  float64
		pageCount int
		wantErr   bool
	}{
		{name: "valid", label: " Paris ", lat: 48.85, lon: 2.35, pageCount: 133},
		{name: "poles and date line", label: "Edge", lat: -90, lon: 180, pageCount: 1},
		{name: "blank label", label: "  ", pageCount: 133, wantErr: true},
		{name: "latitude too big", label: "x", lat: 90.1, pageCount: 133, wantErr: true},
		{name: "longitude too small", label: "x", lon: -180.5, pageCount: 133, wantErr: true},
		{name: "zero page count", label: "x", pageCount: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlace(tt.label, tt.lat, tt.lon, tt.pageCount)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPlace)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, p.ID)
			assert.Equal(t, tt.pageCount, p.PageCount)
			assert.False(t, p.CreatedAt.IsZero())
			assert.NotContains(t, p.LocationString, " Paris ")
		})
	}
}

func TestPageWindow(t *testing.T) {
	w := PageWindow{MaxTotalItems: 4000, PerPage: 30}

	assert.Equal(t, 133, w.Ceiling())

	assert.Equal(t, 3, w.Tighten(3))
	assert.Equal(t, 133, w.Tighten(5000))
	assert.Equal(t, 1, w.Tighten(0))
	assert.Equal(t, 1, w.Tighten(-4))

	assert.Equal(t, 133, w.Effective(0))
	assert.Equal(t, 133, w.Effective(-1))
	assert.Equal(t, 7, w.Effective(7))
	assert.Equal(t, 133, w.Effective(900))

	assert.Equal(t, 1, PageWindow{MaxTotalItems: 10, PerPage: 30}.Ceiling())
	assert.Equal(t, 1, PageWindow{MaxTotalItems: 10}.Ceiling())
}

func TestNewAlbum(t *testing.T) {
	placeID := uuid.New()
	photos := NewAlbum(placeID, []PhotoStub{{RemoteURL: "http://x/a.jpg"}, {RemoteURL: "http://x/b.jpg"}})

	require.Len(t, photos, 2)
	assert.NotEqual(t, photos[0].ID, photos[1].ID)
	for i, p := range photos {
		assert.Equal(t, placeID, p.PlaceID)
		assert.Equal(t, i, p.Position)
		assert.False(t, p.Cached())
		assert.False(t, p.HasImage)
	}
	assert.Equal(t, "http://x/b.jpg", photos[1].RemoteURL)

	assert.Empty(t, NewAlbum(placeID, nil))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("%w: search: %w", ErrNetwork, errors.New("dial tcp")), "Please check your network."},
		{fmt.Errorf("%w: stat fail", ErrServer), "Server messed up."},
		{fmt.Errorf("%w: replace album", ErrDatabase), "Database Error."},
		{ErrInvalidImage, "Unknown error"},
		{ErrUnknown, "Unknown error"},
		{ErrSyncInProgress, "Album is already loading."},
		{ErrPhotoNotFound, "Not found."},
		{errors.New("boom"), "Unknown error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UserMessage(tt.err), "%v", tt.err)
	}

	assert.ErrorIs(t, ErrInvalidImage, ErrUnknown)
}

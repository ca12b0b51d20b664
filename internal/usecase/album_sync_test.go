package usecase_test

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/GoArmGo/PinAlbum/internal/adapter/lock"
	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/GoArmGo/PinAlbum/internal/logger"
	"github.com/GoArmGo/PinAlbum/internal/usecase"
	mock_usecase "github.com/GoArmGo/PinAlbum/internal/usecase/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var window = domain.PageWindow{MaxTotalItems: 4000, PerPage: 30}

// lastPageSource заставляет rand.IntN(n) всегда возвращать n-1
type lastPageSource struct{}

func (lastPageSource) Uint64() uint64 { return math.MaxUint64 }

func testPlace(pageCount int) *domain.Place {
	return &domain.Place{
		ID:             uuid.New(),
		LocationString: "Paris",
		Latitude:       48.85,
		Longitude:      2.35,
		PageCount:      pageCount,
	}
}

func searchPage(pages int, urls ...string) domain.SearchPage {
	stubs := make([]domain.PhotoStub, 0, len(urls))
	for _, u := range urls {
		stubs = append(stubs, domain.PhotoStub{RemoteURL: u})
	}
	return domain.SearchPage{Pages: pages, Photos: stubs}
}

func remoteURLs(photos []domain.Photo) []string {
	out := make([]string, 0, len(photos))
	for _, p := range photos {
		out = append(out, p.RemoteURL)
	}
	return out
}

func TestPopulateAlbum(t *testing.T) {
	tests := []struct {
		name          string
		pageCount     int
		setup         func(place *domain.Place, searcher *mock_usecase.MockPhotoSearcher, store *mock_usecase.MockStorage)
		wantErr       error
		wantURLs      []string
		wantPageCount int
	}{
		{
			name:      "narrows page count to provider pages",
			pageCount: 1,
			setup: func(place *domain.Place, searcher *mock_usecase.MockPhotoSearcher, store *mock_usecase.MockStorage) {
				searcher.EXPECT().Search(gomock.Any(), 48.85, 2.35, 0).
					Return(searchPage(3, "http://x/a.jpg", "http://x/b.jpg"), nil)
				store.EXPECT().ReplaceAlbum(gomock.Any(), place.ID, 3, gomock.Len(2)).Return(nil)
			},
			wantURLs:      []string{"http://x/a.jpg", "http://x/b.jpg"},
			wantPageCount: 3,
		},
		{
			name:      "caps page count at the ceiling",
			pageCount: 133,
			setup: func(place *domain.Place, searcher *mock_usecase.MockPhotoSearcher, store *mock_usecase.MockStorage) {
				searcher.EXPECT().Search(gomock.Any(), 48.85, 2.35, 132).
					Return(searchPage(10000, "http://x/a.jpg"), nil)
				store.EXPECT().ReplaceAlbum(gomock.Any(), place.ID, 133, gomock.Len(1)).Return(nil)
			},
			wantURLs:      []string{"http://x/a.jpg"},
			wantPageCount: 133,
		},
		{
			name:      "non-positive page count uses the ceiling",
			pageCount: 0,
			setup: func(place *domain.Place, searcher *mock_usecase.MockPhotoSearcher, store *mock_usecase.MockStorage) {
				searcher.EXPECT().Search(gomock.Any(), 48.85, 2.35, 132).
					Return(searchPage(5, "http://x/a.jpg"), nil)
				store.EXPECT().ReplaceAlbum(gomock.Any(), place.ID, 5, gomock.Len(1)).Return(nil)
			},
			wantURLs:      []string{"http://x/a.jpg"},
			wantPageCount: 5,
		},
		{
			name:      "retries once when the chosen page is past the new window",
			pageCount: 133,
			setup: func(place *domain.Place, searcher *mock_usecase.MockPhotoSearcher, store *mock_usecase.MockStorage) {
				gomock.InOrder(
					searcher.EXPECT().Search(gomock.Any(), 48.85, 2.35, 132).Return(searchPage(3), nil),
					searcher.EXPECT().Search(gomock.Any(), 48.85, 2.35, 2).
						Return(searchPage(3, "http://x/c.jpg", "http://x/d.jpg"), nil),
				)
				store.EXPECT().ReplaceAlbum(gomock.Any(), place.ID, 3, gomock.Len(2)).Return(nil)
			},
			wantURLs:      []string{"http://x/c.jpg", "http://x/d.jpg"},
			wantPageCount: 3,
		},
		{
			name:      "empty page inside the window is an empty album",
			pageCount: 3,
			setup: func(place *domain.Place, searcher *mock_usecase.MockPhotoSearcher, store *mock_usecase.MockStorage) {
				searcher.EXPECT().Search(gomock.Any(), 48.85, 2.35, 2).Return(searchPage(3), nil)
				store.EXPECT().ReplaceAlbum(gomock.Any(), place.ID, 3, gomock.Len(0)).Return(nil)
			},
			wantURLs:      []string{},
			wantPageCount: 3,
		},
		{
			name:      "provider stat fail leaves the album untouched",
			pageCount: 1,
			setup: func(place *domain.Place, searcher *mock_usecase.MockPhotoSearcher, store *mock_usecase.MockStorage) {
				searcher.EXPECT().Search(gomock.Any(), 48.85, 2.35, 0).
					Return(domain.SearchPage{}, errors.Join(domain.ErrServer, errors.New(`flickr stat "fail"`)))
			},
			wantErr: domain.ErrServer,
		},
		{
			name:      "network failure leaves the album untouched",
			pageCount: 1,
			setup: func(place *domain.Place, searcher *mock_usecase.MockPhotoSearcher, store *mock_usecase.MockStorage) {
				searcher.EXPECT().Search(gomock.Any(), 48.85, 2.35, 0).Return(domain.SearchPage{}, domain.ErrNetwork)
			},
			wantErr: domain.ErrNetwork,
		},
		{
			name:      "store failure is a database error",
			pageCount: 1,
			setup: func(place *domain.Place, searcher *mock_usecase.MockPhotoSearcher, store *mock_usecase.MockStorage) {
				searcher.EXPECT().Search(gomock.Any(), 48.85, 2.35, 0).Return(searchPage(1, "http://x/a.jpg"), nil)
				store.EXPECT().ReplaceAlbum(gomock.Any(), place.ID, 1, gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr: domain.ErrDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			searcher := mock_usecase.NewMockPhotoSearcher(ctrl)
			store := mock_usecase.NewMockStorage(ctrl)
			place := testPlace(tt.pageCount)

			store.EXPECT().GetPlace(gomock.Any(), place.ID).Return(place, nil)
			tt.setup(place, searcher, store)

			engine := usecase.NewAlbumSyncEngine(store, searcher, lock.NewLocal(), window, rand.New(lastPageSource{}), logger.Discard())
			photos, err := engine.PopulateAlbum(context.Background(), place.ID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, photos)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURLs, remoteURLs(photos))
			for i, p := range photos {
				assert.Equal(t, place.ID, p.PlaceID)
				assert.Equal(t, i, p.Position)
				assert.False(t, p.Cached())
			}
		})
	}
}

func TestPopulateAlbum_PageWithinWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searcher := mock_usecase.NewMockPhotoSearcher(ctrl)
	store := mock_usecase.NewMockStorage(ctrl)
	place := testPlace(5)

	store.EXPECT().GetPlace(gomock.Any(), place.ID).Return(place, nil).AnyTimes()
	store.EXPECT().ReplaceAlbum(gomock.Any(), place.ID, 5, gomock.Any()).Return(nil).AnyTimes()
	searcher.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ float64, page int) (domain.SearchPage, error) {
			assert.GreaterOrEqual(t, page, 0)
			assert.Less(t, page, 5)
			return searchPage(5, "http://x/a.jpg"), nil
		}).Times(50)

	engine := usecase.NewAlbumSyncEngine(store, searcher, lock.NewLocal(), window, rand.New(rand.NewPCG(1, 2)), logger.Discard())
	for i := 0; i < 50; i++ {
		_, err := engine.PopulateAlbum(context.Background(), place.ID)
		require.NoError(t, err)
	}
}

func TestPopulateAlbum_TruncatesToPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searcher := mock_usecase.NewMockPhotoSearcher(ctrl)
	store := mock_usecase.NewMockStorage(ctrl)
	place := testPlace(1)

	urls := make([]string, 40)
	for i := range urls {
		urls[i] = "http://x/p.jpg"
	}

	store.EXPECT().GetPlace(gomock.Any(), place.ID).Return(place, nil)
	searcher.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any(), 0).Return(searchPage(1, urls...), nil)
	store.EXPECT().ReplaceAlbum(gomock.Any(), place.ID, 1, gomock.Len(30)).Return(nil)

	engine := usecase.NewAlbumSyncEngine(store, searcher, lock.NewLocal(), window, nil, logger.Discard())
	photos, err := engine.PopulateAlbum(context.Background(), place.ID)

	require.NoError(t, err)
	assert.Len(t, photos, 30)
}

func TestPopulateAlbum_PlaceNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_usecase.NewMockStorage(ctrl)
	searcher := mock_usecase.NewMockPhotoSearcher(ctrl)
	id := uuid.New()
	store.EXPECT().GetPlace(gomock.Any(), id).Return(nil, domain.ErrPlaceNotFound)

	engine := usecase.NewAlbumSyncEngine(store, searcher, lock.NewLocal(), window, nil, logger.Discard())
	_, err := engine.PopulateAlbum(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
}

func TestPopulateAlbum_LockHeld(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_usecase.NewMockStorage(ctrl)
	searcher := mock_usecase.NewMockPhotoSearcher(ctrl)
	locker := mock_usecase.NewMockPlaceLocker(ctrl)
	id := uuid.New()

	locker.EXPECT().TryLock(gomock.Any(), id).Return(nil, false, nil)

	engine := usecase.NewAlbumSyncEngine(store, searcher, locker, window, nil, logger.Discard())
	_, err := engine.PopulateAlbum(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrSyncInProgress)
}

func TestPopulateAlbum_LockError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	locker := mock_usecase.NewMockPlaceLocker(ctrl)
	id := uuid.New()
	locker.EXPECT().TryLock(gomock.Any(), id).Return(nil, false, errors.New("redis down"))

	engine := usecase.NewAlbumSyncEngine(mock_usecase.NewMockStorage(ctrl), mock_usecase.NewMockPhotoSearcher(ctrl), locker, window, nil, logger.Discard())
	_, err := engine.PopulateAlbum(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrDatabase)
}

func TestPopulateAlbum_OverlappingCallIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searcher := mock_usecase.NewMockPhotoSearcher(ctrl)
	store := mock_usecase.NewMockStorage(ctrl)
	place := testPlace(1)

	entered := make(chan struct{})
	release := make(chan struct{})

	store.EXPECT().GetPlace(gomock.Any(), place.ID).Return(place, nil).Times(2)
	store.EXPECT().ReplaceAlbum(gomock.Any(), place.ID, 1, gomock.Any()).Return(nil).Times(2)
	gomock.InOrder(
		searcher.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any(), 0).
			DoAndReturn(func(context.Context, float64, float64, int) (domain.SearchPage, error) {
				close(entered)
				<-release
				return searchPage(1, "http://x/a.jpg"), nil
			}),
		searcher.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any(), 0).
			Return(searchPage(1, "http://x/b.jpg"), nil),
	)

	engine := usecase.NewAlbumSyncEngine(store, searcher, lock.NewLocal(), window, nil, logger.Discard())

	done := make(chan error, 1)
	go func() {
		_, err := engine.PopulateAlbum(context.Background(), place.ID)
		done <- err
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first sync never reached the search")
	}

	_, err := engine.PopulateAlbum(context.Background(), place.ID)
	assert.ErrorIs(t, err, domain.ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)

	// после завершения первой синхронизации место снова свободно
	photos, err := engine.PopulateAlbum(context.Background(), place.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://x/b.jpg"}, remoteURLs(photos))
}

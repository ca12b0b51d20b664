package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/GoArmGo/PinAlbum/internal/logger"
	"github.com/GoArmGo/PinAlbum/internal/usecase"
	mock_usecase "github.com/GoArmGo/PinAlbum/internal/usecase/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlace(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		lat, lon  float64
		mockSetup func(store *mock_usecase.MockStorage)
		wantErr   error
	}{
		{
			name:  "Success",
			label: "  Paris, Ile-de-France ",
			lat:   48.85,
			lon:   2.35,
			mockSetup: func(store *mock_usecase.MockStorage) {
				store.EXPECT().CreatePlace(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Place) error {
						assert.Equal(t, "Paris, Ile-de-France", p.LocationString)
						assert.Equal(t, 133, p.PageCount)
						return nil
					})
			},
		},
		{
			name:    "Empty Label",
			label:   "   ",
			wantErr: domain.ErrInvalidPlace,
		},
		{
			name:    "Latitude Out Of Range",
			label:   "Nowhere",
			lat:     91,
			wantErr: domain.ErrInvalidPlace,
		},
		{
			name:  "Store Error",
			label: "Paris",
			mockSetup: func(store *mock_usecase.MockStorage) {
				store.EXPECT().CreatePlace(gomock.Any(), gomock.Any()).Return(domain.ErrDatabase)
			},
			wantErr: domain.ErrDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock_usecase.NewMockStorage(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(store)
			}

			uc := usecase.NewPlaceUseCase(store, 133, logger.Discard())
			place, err := uc.CreatePlace(context.Background(), tt.label, tt.lat, tt.lon)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, place)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, place.ID)
		})
	}
}

func TestListPlaces_FuzzyFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	places := []domain.Place{
		{ID: uuid.New(), LocationString: "Paris, Ile-de-France"},
		{ID: uuid.New(), LocationString: "Rome, Lazio"},
		{ID: uuid.New(), LocationString: "Parma, Emilia-Romagna"},
	}

	store := mock_usecase.NewMockStorage(ctrl)
	store.EXPECT().ListPlaces(gomock.Any()).Return(places, nil).Times(3)

	uc := usecase.NewPlaceUseCase(store, 133, logger.Discard())
	ctx := context.Background()

	all, err := uc.ListPlaces(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	rome, err := uc.ListPlaces(ctx, "ROME")
	require.NoError(t, err)
	require.Len(t, rome, 1)
	assert.Equal(t, "Rome, Lazio", rome[0].LocationString)

	par, err := uc.ListPlaces(ctx, "par")
	require.NoError(t, err)
	labels := []string{}
	for _, p := range par {
		labels = append(labels, p.LocationString)
	}
	assert.ElementsMatch(t, []string{"Paris, Ile-de-France", "Parma, Emilia-Romagna"}, labels)
}

func TestFindPlaceByLabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	place := &domain.Place{ID: uuid.New(), LocationString: "Paris"}
	store := mock_usecase.NewMockStorage(ctrl)
	store.EXPECT().FindPlaceByLabel(gomock.Any(), "Paris").Return(place, nil)
	store.EXPECT().FindPlaceByLabel(gomock.Any(), "Lyon").Return(nil, domain.ErrPlaceNotFound)

	uc := usecase.NewPlaceUseCase(store, 133, logger.Discard())

	got, err := uc.FindPlaceByLabel(context.Background(), " Paris ")
	require.NoError(t, err)
	assert.Equal(t, place.ID, got.ID)

	_, err = uc.FindPlaceByLabel(context.Background(), "Lyon")
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
}

func TestDeletePlaceAndPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	placeID, photoID := uuid.New(), uuid.New()
	store := mock_usecase.NewMockStorage(ctrl)
	store.EXPECT().DeletePlace(gomock.Any(), placeID).Return(nil)
	store.EXPECT().DeletePhoto(gomock.Any(), photoID).Return(domain.ErrPhotoNotFound)
	store.EXPECT().ListPlaces(gomock.Any()).Return(nil, errors.Join(domain.ErrDatabase, errors.New("closed")))

	uc := usecase.NewPlaceUseCase(store, 133, logger.Discard())
	ctx := context.Background()

	assert.NoError(t, uc.DeletePlace(ctx, placeID))
	assert.ErrorIs(t, uc.DeletePhoto(ctx, photoID), domain.ErrPhotoNotFound)

	_, err := uc.ListPlaces(ctx, "")
	assert.ErrorIs(t, err, domain.ErrDatabase)
}

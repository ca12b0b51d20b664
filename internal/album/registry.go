package album

import (
	"context"
	"log/slog"
	"sync"

	"github.com/GoArmGo/PinAlbum/internal/usecase"
	"github.com/google/uuid"
)

// Registry хранит по одному ViewModel на место
type Registry struct {
	syncer usecase.AlbumSyncer
	images usecase.ImageResolver
	photos PhotoStore
	logger *slog.Logger

	mu    sync.Mutex
	views map[uuid.UUID]*ViewModel
}

func NewRegistry(syncer usecase.AlbumSyncer, images usecase.ImageResolver, photos PhotoStore, logger *slog.Logger) *Registry {
	return &Registry{
		syncer: syncer,
		images: images,
		photos: photos,
		logger: logger,
		views:  make(map[uuid.UUID]*ViewModel),
	}
}

// Get возвращает альбом места, создавая его при первом обращении
func (r *Registry) Get(placeID uuid.UUID) *ViewModel {
	r.mu.Lock()
	defer r.mu.Unlock()

	vm, ok := r.views[placeID]
	if !ok {
		vm = NewViewModel(placeID, r.syncer, r.images, r.photos, r.logger)
		r.views[placeID] = vm
	}
	return vm
}

// Lookup возвращает альбом места, только если он уже открыт
func (r *Registry) Lookup(placeID uuid.UUID) (*ViewModel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vm, ok := r.views[placeID]
	return vm, ok
}

// Open возвращает альбом места после ViewModel.Open
func (r *Registry) Open(ctx context.Context, placeID uuid.UUID) (*ViewModel, error) {
	vm := r.Get(placeID)
	if err := vm.Open(ctx); err != nil {
		return vm, err
	}
	return vm, nil
}

// Drop закрывает и забывает альбом места (например, после удаления места)
func (r *Registry) Drop(placeID uuid.UUID) {
	r.mu.Lock()
	vm, ok := r.views[placeID]
	delete(r.views, placeID)
	r.mu.Unlock()

	if ok {
		vm.Close()
	}
}

// Close закрывает все альбомы
func (r *Registry) Close() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[uuid.UUID]*ViewModel)
	r.mu.Unlock()

	for _, vm := range views {
		vm.Close()
	}
}

package album

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/GoArmGo/PinAlbum/internal/usecase"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrClosed возвращается после Close
var ErrClosed = errors.New("album view closed")

const (
	updatesBuffer      = 16
	defaultResolveJobs = 8
)

// State это состояние альбома для отображения
type State int

const (
	StateLoading State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PhotoStore это часть хранилища, которая нужна альбому
type PhotoStore interface {
	ListPhotos(ctx context.Context, placeID uuid.UUID) ([]domain.Photo, error)
	DeletePhoto(ctx context.Context, id uuid.UUID) error
}

// PhotoView это фото в снимке состояния альбома
type PhotoView struct {
	ID        uuid.UUID `json:"id"`
	RemoteURL string    `json:"remote_url"`
	Position  int       `json:"position"`
	Loaded    bool      `json:"loaded"`
	HasImage  bool      `json:"has_image"`
}

// Snapshot это неизменяемая копия состояния альбома
type Snapshot struct {
	PlaceID        uuid.UUID   `json:"place_id"`
	State          State       `json:"state"`
	Photos         []PhotoView `json:"photos"`
	Loaded         int         `json:"loaded"`
	RefreshEnabled bool        `json:"refresh_enabled"`
	Error          string      `json:"error,omitempty"`
	Generation     uint64      `json:"generation"`
}

// ViewModel ведет альбом одного места: состояние Loading/Ready, счетчик загруженных
// изображений и доступность обновления.
// Все изменения состояния происходят под mu; сетевые вызовы выполняются без него.
type ViewModel struct {
	placeID uuid.UUID
	syncer  usecase.AlbumSyncer
	images  usecase.ImageResolver
	photos  PhotoStore
	logger  *slog.Logger

	// ctx отменяется в Close и прерывает загрузки, запущенные этим альбомом
	ctx    context.Context
	cancel context.CancelFunc

	mu             sync.Mutex
	state          State
	album          []domain.Photo
	generation     uint64
	counted        map[uuid.UUID]struct{}
	refreshEnabled bool
	lastErr        error
	closed         bool
	updates        chan Snapshot
}

// NewViewModel создает альбом места в состоянии Ready без фото
func NewViewModel(placeID uuid.UUID, syncer usecase.AlbumSyncer, images usecase.ImageResolver, photos PhotoStore, logger *slog.Logger) *ViewModel {
	ctx, cancel := context.WithCancel(context.Background())
	return &ViewModel{
		placeID: placeID,
		syncer:  syncer,
		images:  images,
		photos:  photos,
		logger:  logger.With("place_id", placeID),
		ctx:     ctx,
		cancel:  cancel,
		state:   StateReady,
		counted: make(map[uuid.UUID]struct{}),
		updates: make(chan Snapshot, updatesBuffer),
	}
}

// Open показывает сохраненные фото места, а если их нет, загружает новый альбом.
// Если сохраненный набор не изменился, счетчик загрузок сохраняется.
func (vm *ViewModel) Open(ctx context.Context) error {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return ErrClosed
	}
	if vm.state == StateLoading {
		vm.mu.Unlock()
		return nil
	}
	vm.mu.Unlock()

	photos, err := vm.photos.ListPhotos(ctx, vm.placeID)
	if err != nil {
		vm.fail(err)
		return err
	}
	if len(photos) == 0 {
		if err := vm.Refresh(ctx); err != nil && !errors.Is(err, domain.ErrSyncInProgress) {
			return err
		}
		return nil
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.closed {
		return ErrClosed
	}
	// пока читали хранилище, мог начаться Refresh: его состояние не трогаем
	if vm.state == StateLoading {
		return nil
	}
	if !sameAlbum(vm.album, photos) {
		vm.setAlbumLocked(photos)
	}
	vm.state = StateReady
	vm.publishLocked()
	return nil
}

// Refresh заменяет альбом новой случайной страницей результатов.
// Во время загрузки повторный вызов возвращает domain.ErrSyncInProgress.
// При ошибке альбом остается прежним, а ошибка сохраняется в снимке.
func (vm *ViewModel) Refresh(ctx context.Context) error {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return ErrClosed
	}
	if vm.state == StateLoading {
		vm.mu.Unlock()
		return domain.ErrSyncInProgress
	}
	vm.state = StateLoading
	vm.refreshEnabled = false
	vm.lastErr = nil
	vm.publishLocked()
	vm.mu.Unlock()

	photos, err := vm.syncer.PopulateAlbum(ctx, vm.placeID)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.closed {
		return ErrClosed
	}
	vm.state = StateReady
	if err != nil {
		vm.lastErr = err
		vm.refreshEnabled = vm.allLoadedLocked()
		vm.logger.Warn("album refresh failed", "error", err)
		vm.publishLocked()
		return err
	}

	vm.setAlbumLocked(photos)
	vm.publishLocked()
	return nil
}

// ResolveImage получает байты изображения фото из текущего альбома.
// Завершение (успешное или нет) засчитывается один раз за поколение альбома;
// когда засчитаны все фото, обновление становится доступным.
func (vm *ViewModel) ResolveImage(ctx context.Context, photoID uuid.UUID) ([]byte, error) {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return nil, ErrClosed
	}
	idx := vm.indexLocked(photoID)
	if idx < 0 {
		vm.mu.Unlock()
		return nil, domain.ErrPhotoNotFound
	}
	photo := vm.album[idx]
	generation := vm.generation
	vm.mu.Unlock()

	resolveCtx, cancel := vm.bind(ctx)
	defer cancel()

	data, err := vm.images.Resolve(resolveCtx, photo)
	vm.complete(generation, photoID, data, err)
	return data, err
}

// ResolveAll запрашивает изображения всех фото альбома через ResolveAsync и ждет все результаты.
// Ошибки отдельных фото не прерывают остальные загрузки.
func (vm *ViewModel) ResolveAll(ctx context.Context) error {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return ErrClosed
	}
	photos := append([]domain.Photo(nil), vm.album...)
	generation := vm.generation
	vm.mu.Unlock()

	resolveCtx, cancel := vm.bind(ctx)
	defer cancel()

	var g errgroup.Group
	g.SetLimit(defaultResolveJobs)
	for _, photo := range photos {
		g.Go(func() error {
			res, ok := <-vm.images.ResolveAsync(resolveCtx, photo)
			if !ok {
				res = usecase.ImageResult{PhotoID: photo.ID, Err: domain.ErrUnknown}
			}
			if res.Err != nil {
				vm.logger.Debug("photo image not resolved", "photo_id", photo.ID, "error", res.Err)
			}
			vm.complete(generation, photo.ID, res.Data, res.Err)
			return nil
		})
	}
	_ = g.Wait()
	return ctx.Err()
}

// bind возвращает контекст, который отменяется и вызывающим, и Close
func (vm *ViewModel) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	bound, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(vm.ctx, cancel)
	return bound, func() {
		stop()
		cancel()
	}
}

// complete засчитывает завершение загрузки, если альбом еще тот же и не закрыт
func (vm *ViewModel) complete(generation uint64, photoID uuid.UUID, data []byte, err error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.closed || generation != vm.generation {
		return
	}
	if _, done := vm.counted[photoID]; done {
		if err == nil {
			vm.storeImageLocked(photoID, data)
		}
		return
	}

	vm.counted[photoID] = struct{}{}
	if err == nil {
		vm.storeImageLocked(photoID, data)
	}
	if vm.state == StateReady && vm.allLoadedLocked() {
		vm.refreshEnabled = true
	}
	vm.publishLocked()
}

// DeletePhoto удаляет фото из хранилища и из альбома.
// Счетчик загрузок и доступность обновления не меняются.
func (vm *ViewModel) DeletePhoto(ctx context.Context, photoID uuid.UUID) error {
	if err := vm.photos.DeletePhoto(ctx, photoID); err != nil {
		return err
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if idx := vm.indexLocked(photoID); idx >= 0 {
		vm.album = append(vm.album[:idx:idx], vm.album[idx+1:]...)
		vm.publishLocked()
	}
	return nil
}

// Snapshot возвращает текущее состояние альбома
func (vm *ViewModel) Snapshot() Snapshot {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.snapshotLocked()
}

// Updates отдает снимки после каждого изменения состояния.
// Если читатель не успевает, снимки пропускаются; канал закрывается в Close.
func (vm *ViewModel) Updates() <-chan Snapshot {
	return vm.updates
}

// Close отменяет загрузки альбома; поздние завершения игнорируются
func (vm *ViewModel) Close() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.closed {
		return
	}
	vm.closed = true
	vm.cancel()
	close(vm.updates)
}

// === helpers, вызываются под mu ===

func (vm *ViewModel) setAlbumLocked(photos []domain.Photo) {
	vm.album = append([]domain.Photo(nil), photos...)
	vm.generation++
	vm.counted = make(map[uuid.UUID]struct{}, len(photos))
	vm.refreshEnabled = vm.allLoadedLocked()
}

func (vm *ViewModel) allLoadedLocked() bool {
	return len(vm.counted) >= len(vm.album)
}

func (vm *ViewModel) indexLocked(photoID uuid.UUID) int {
	for i, p := range vm.album {
		if p.ID == photoID {
			return i
		}
	}
	return -1
}

func (vm *ViewModel) storeImageLocked(photoID uuid.UUID, data []byte) {
	if idx := vm.indexLocked(photoID); idx >= 0 {
		vm.album[idx].Image = data
		vm.album[idx].HasImage = true
	}
}

func (vm *ViewModel) fail(err error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.closed || vm.state == StateLoading {
		return
	}
	vm.lastErr = err
	vm.publishLocked()
}

func (vm *ViewModel) snapshotLocked() Snapshot {
	views := make([]PhotoView, 0, len(vm.album))
	for _, p := range vm.album {
		_, loaded := vm.counted[p.ID]
		views = append(views, PhotoView{
			ID:        p.ID,
			RemoteURL: p.RemoteURL,
			Position:  p.Position,
			Loaded:    loaded,
			HasImage:  p.HasImage || p.Cached(),
		})
	}
	snap := Snapshot{
		PlaceID:        vm.placeID,
		State:          vm.state,
		Photos:         views,
		Loaded:         len(vm.counted),
		RefreshEnabled: vm.refreshEnabled,
		Generation:     vm.generation,
	}
	if vm.lastErr != nil {
		snap.Error = domain.UserMessage(vm.lastErr)
	}
	return snap
}

// publishLocked отправляет снимок без блокировки
func (vm *ViewModel) publishLocked() {
	if vm.closed {
		return
	}
	select {
	case vm.updates <- vm.snapshotLocked():
	default:
	}
}

func sameAlbum(current, stored []domain.Photo) bool {
	if len(current) != len(stored) {
		return false
	}
	for i := range current {
		if current[i].ID != stored[i].ID {
			return false
		}
	}
	return true
}

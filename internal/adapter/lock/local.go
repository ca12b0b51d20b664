package lock

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Local это PlaceLocker внутри одного процесса
type Local struct {
	mu     sync.Mutex
	active map[uuid.UUID]struct{}
}

func NewLocal() *Local {
	return &Local{active: make(map[uuid.UUID]struct{})}
}

// TryLock не ждет: если место уже занято, сразу возвращает ok=false
func (l *Local) TryLock(ctx context.Context, placeID uuid.UUID) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, busy := l.active[placeID]; busy {
		return nil, false, nil
	}
	l.active[placeID] = struct{}{}

	var once sync.Once
	unlock := func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.active, placeID)
			l.mu.Unlock()
		})
	}
	return unlock, true, nil
}

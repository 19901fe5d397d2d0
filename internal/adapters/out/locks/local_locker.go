package locks

import (
	"context"
	"sync"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/ports"
)

// LocalLocker implements ports.PackageLocker inside one process. Idle keys
// are dropped once their last holder or waiter leaves.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[kernel.UUID]*slot
}

type slot struct {
	sem  chan struct{}
	refs int
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: make(map[kernel.UUID]*slot)}
}

func (l *LocalLocker) Lock(ctx context.Context, packageID kernel.UUID) (ports.ReleaseFunc, error) {
	s := l.acquireSlot(packageID)

	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		l.releaseSlot(packageID)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			<-s.sem
			l.releaseSlot(packageID)
		})
		return nil
	}, nil
}

func (l *LocalLocker) acquireSlot(id kernel.UUID) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[id]
	if !ok {
		s = &slot{sem: make(chan struct{}, 1)}
		l.slots[id] = s
	}
	s.refs++
	return s
}

func (l *LocalLocker) releaseSlot(id kernel.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.slots[id]
	s.refs--
	if s.refs == 0 {
		delete(l.slots, id)
	}
}

// held reports how many keys currently have holders or waiters.
func (l *LocalLocker) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}

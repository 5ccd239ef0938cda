package locker

import (
	"context"
	"sync"
	"time"
)

// Memory — внутрипроцессный guard для запуска без Redis. Семантика та же:
// взятый маркер истекает по TTL, даже если Release так и не случился.
type Memory struct {
	mu   sync.Mutex
	ttl  time.Duration
	held map[string]time.Time
	now  func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:  ttl,
		held: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (l *Memory) Acquire(_ context.Context, orderRecordID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if expiresAt, ok := l.held[orderRecordID]; ok && l.now().Before(expiresAt) {
		return false, nil
	}

	l.held[orderRecordID] = l.now().Add(l.ttl)

	return true, nil
}

func (l *Memory) Release(_ context.Context, orderRecordID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.held, orderRecordID)
}

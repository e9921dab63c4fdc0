package economy

import (
	"errors"
	"testing"

	"radius-defense/internal/event"
)

func TestBountyCreditsOnEnemyDestroyed(t *testing.T) {
	d := event.NewDispatcher()
	pool := NewPool(0)
	b, err := NewBounty(pool, 5, d)
	if err != nil {
		t.Fatal(err)
	}

	d.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: 1})
	d.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: 2})
	d.Dispatch(event.Event{Type: event.EnemyEscaped, Data: 3})

	if pool.Balance() != 10 {
		t.Errorf("Expected 10 gold, got %d", pool.Balance())
	}
	if b.Earned() != 10 {
		t.Errorf("Expected 10 earned, got %d", b.Earned())
	}
}

func TestBountyRequiresPool(t *testing.T) {
	if _, err := NewBounty(nil, 5, nil); !errors.Is(err, ErrNoPool) {
		t.Errorf("Expected ErrNoPool, got %v", err)
	}
}

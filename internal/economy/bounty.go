package economy

import (
	"log"

	"radius-defense/internal/event"
)

// Bounty pays gold into the pool for every destroyed enemy.
type Bounty struct {
	pool   *Pool
	reward int
	earned int
}

// NewBounty subscribes a bounty to event.EnemyDestroyed.
func NewBounty(pool *Pool, reward int, dispatcher *event.Dispatcher) (*Bounty, error) {
	if pool == nil {
		return nil, ErrNoPool
	}
	b := &Bounty{pool: pool, reward: reward}
	if dispatcher != nil {
		dispatcher.Subscribe(event.EnemyDestroyed, b)
	}
	return b, nil
}

func (b *Bounty) OnEvent(e event.Event) {
	if e.Type != event.EnemyDestroyed {
		return
	}
	if b.reward <= 0 {
		log.Printf("Bounty: non-positive reward %d, nothing credited", b.reward)
		return
	}
	b.pool.credit(b.reward)
	b.earned += b.reward
}

// Earned is the total gold paid out so far.
func (b *Bounty) Earned() int { return b.earned }

// Package economy implements the upgrade shop and the gold balance it spends.
package economy

import "errors"

// ErrNoPool is returned when a shop is created without a resource pool.
var ErrNoPool = errors.New("economy: resource pool is nil")

// Pool is the shared gold balance. Anyone holding it may read the balance;
// only the economy package changes it.
type Pool struct {
	balance int
}

// NewPool creates a pool holding gold. Negative amounts are clamped to zero.
func NewPool(gold int) *Pool {
	if gold < 0 {
		gold = 0
	}
	return &Pool{balance: gold}
}

// Balance returns the current gold.
func (p *Pool) Balance() int {
	return p.balance
}

// CanAfford reports whether cost can be paid.
func (p *Pool) CanAfford(cost int) bool {
	return p.balance >= cost
}

// spend deducts cost when affordable. The check and the deduction happen together.
func (p *Pool) spend(cost int) bool {
	if cost < 0 || !p.CanAfford(cost) {
		return false
	}
	p.balance -= cost
	return true
}

func (p *Pool) credit(amount int) {
	if amount > 0 {
		p.balance += amount
	}
}

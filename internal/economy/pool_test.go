package economy

import "testing"

func TestPoolSpend(t *testing.T) {
	p := NewPool(25)
	if !p.spend(20) {
		t.Fatal("Expected spend of 20 to succeed")
	}
	if p.Balance() != 5 {
		t.Errorf("Expected balance 5, got %d", p.Balance())
	}
	if p.spend(6) {
		t.Error("Expected spend of 6 to fail")
	}
	if p.Balance() != 5 {
		t.Errorf("Failed spend changed balance to %d", p.Balance())
	}
	if p.spend(-1) {
		t.Error("Negative spend must be rejected")
	}
}

func TestNewPoolClampsNegative(t *testing.T) {
	if NewPool(-10).Balance() != 0 {
		t.Error("Negative starting gold should clamp to zero")
	}
}

func TestPoolCredit(t *testing.T) {
	p := NewPool(0)
	p.credit(5)
	p.credit(-3)
	if p.Balance() != 5 {
		t.Errorf("Expected 5, got %d", p.Balance())
	}
}

package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(TowerPlaced, a)
	d.Subscribe(TowerPlaced, b)
	d.Subscribe(EnemyDestroyed, b)

	d.Dispatch(Event{Type: TowerPlaced, Data: 7})

	if len(a.got) != 1 || len(b.got) != 1 {
		t.Fatalf("Expected one event each, got %d and %d", len(a.got), len(b.got))
	}
	if a.got[0].Data != 7 {
		t.Errorf("Expected payload 7, got %v", a.got[0].Data)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	d.Subscribe(WaveEnded, a)
	d.Unsubscribe(WaveEnded, a)
	d.Dispatch(Event{Type: WaveEnded})
	if len(a.got) != 0 {
		t.Errorf("Expected no events after unsubscribe, got %d", len(a.got))
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(SceneChanged, ListenerFunc(func(e Event) { calls++ }))
	d.Dispatch(Event{Type: SceneChanged, Data: "Game"})
	d.Dispatch(Event{Type: TowerPlaced})
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

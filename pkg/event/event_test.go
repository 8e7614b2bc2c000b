package event

import (
	"reflect"
	"testing"
)

func TestQueueDrain(t *testing.T) {
	q := NewQueue()
	q.SetStep(3)
	q.Publish(Event{Type: BossHit, Amount: 10})
	q.SetStep(4)
	q.Publish(Event{Type: ScoreIncrement, Amount: 1})

	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}

	events := q.Drain()
	want := []Event{
		{Type: BossHit, Step: 3, Amount: 10},
		{Type: ScoreIncrement, Step: 4, Amount: 1},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("Drain = %+v, want %+v", events, want)
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Error("queue should be empty after Drain")
	}
}

func TestQueueDrainReturnsCopy(t *testing.T) {
	q := NewQueue()
	q.Publish(Event{Type: BossHit})
	first := q.Drain()
	q.Publish(Event{Type: PlayerHit})

	if first[0].Type != BossHit {
		t.Errorf("drained slice was overwritten: %+v", first)
	}
}

func TestDispatcher(t *testing.T) {
	d := NewDispatcher()
	var got []string

	hitID := d.Subscribe(BossHit, ListenerFunc(func(e Event) {
		got = append(got, "hit")
	}))
	d.Subscribe(BossDefeated, ListenerFunc(func(e Event) {
		got = append(got, "defeated")
	}))
	d.SubscribeAll(ListenerFunc(func(e Event) {
		got = append(got, "all:"+string(e.Type))
	}))

	d.DispatchAll([]Event{{Type: BossHit}, {Type: BossDefeated}, {Type: PlayerHit}})

	want := []string{"hit", "all:boss_hit", "defeated", "all:boss_defeated", "all:player_hit"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dispatch order = %v, want %v", got, want)
	}

	got = nil
	d.Unsubscribe(hitID)
	d.Unsubscribe(999)
	d.Dispatch(Event{Type: BossHit})
	if !reflect.DeepEqual(got, []string{"all:boss_hit"}) {
		t.Errorf("after unsubscribe got %v", got)
	}
}

package event

import (
	"errors"
	"testing"
)

func TestSubscribeValidation(t *testing.T) {
	b := NewBus()

	if _, err := b.Subscribe(TopicRedrawNeeded, nil); !errors.Is(err, ErrNilHandler) {
		t.Errorf("expected ErrNilHandler, got %v", err)
	}
	if _, err := b.Subscribe("", func(any) {}); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("expected ErrInvalidTopic, got %v", err)
	}
}

func TestPublishDeliversInRegistrationOrder(t *testing.T) {
	b := NewBus()

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		if _, err := b.Subscribe(TopicEditorFlagsChanged, func(any) {
			order = append(order, i)
		}); err != nil {
			t.Fatalf("Subscribe: %v", err)
		}
	}

	b.Publish(TopicEditorFlagsChanged, FlagsChanged{})

	if len(order) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(order))
	}
	for i, got := range order {
		if got != i {
			t.Errorf("delivery %d went to handler %d", i, got)
		}
	}
}

func TestPublishPayload(t *testing.T) {
	b := NewBus()

	var got FocusChanged
	if _, err := b.Subscribe(TopicConsoleFocusChanged, func(payload any) {
		got = payload.(FocusChanged)
	}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	b.Publish(TopicConsoleFocusChanged, FocusChanged{Gained: true})

	if !got.Gained {
		t.Error("payload not delivered")
	}
}

func TestUnsubscribe(t *testing.T) {
	b := NewBus()

	calls := 0
	sub, err := b.Subscribe(TopicRedrawNeeded, func(any) { calls++ })
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	b.Publish(TopicRedrawNeeded, RedrawNeeded{})
	if err := b.Unsubscribe(sub); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}
	b.Publish(TopicRedrawNeeded, RedrawNeeded{})

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}

	if err := b.Unsubscribe(sub); !errors.Is(err, ErrSubscriptionNotFound) {
		t.Errorf("expected ErrSubscriptionNotFound, got %v", err)
	}
}

func TestPublishNoSubscribers(t *testing.T) {
	b := NewBus()
	b.Publish(TopicEditorKeyPressed, KeyChanged{Alt: true})

	stats := b.Stats()
	if stats.Published != 1 {
		t.Errorf("Published = %d, want 1", stats.Published)
	}
	if stats.Delivered != 0 {
		t.Errorf("Delivered = %d, want 0", stats.Delivered)
	}
}

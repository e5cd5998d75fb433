package events

import (
	"context"
	"errors"
	"testing"
)

func TestPublishInvokesAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var calls []string
	d.Subscribe(EventProfileMutated, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.TargetID)
		return errors.New("first failed")
	})
	d.Subscribe(EventProfileMutated, func(_ context.Context, e Event) error {
		if e.ID == "" || e.Timestamp.IsZero() {
			t.Errorf("expected id and timestamp to be filled")
		}
		calls = append(calls, "second:"+e.TargetID)
		return nil
	})
	d.Subscribe(EventUserDeleted, func(context.Context, Event) error {
		t.Errorf("unrelated handler must not run")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventProfileMutated, TargetID: "u1"})
	if err == nil {
		t.Fatalf("expected joined handler error")
	}
	if len(calls) != 2 || calls[0] != "first:u1" || calls[1] != "second:u1" {
		t.Fatalf("unexpected calls %v", calls)
	}
}

func TestPublishWithoutListeners(t *testing.T) {
	if err := NewInMemoryDispatcher().Publish(context.Background(), Event{Type: EventUserDeleted}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

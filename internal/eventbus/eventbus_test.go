package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"groupedit/internal/domain"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventGroupSaved, func(e DomainEvent) {
		got <- e
	})

	b.Publish(GroupSavedEvent{Mode: domain.ModeCreate, Record: &domain.GroupRecord{ID: 42}})

	select {
	case e := <-got:
		saved, ok := e.(GroupSavedEvent)
		require.True(t, ok)
		require.Equal(t, int64(42), saved.Record.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	var kept, dropped atomic.Int32
	done := make(chan struct{}, 2)

	unsubscribe := b.Subscribe(EventDialogOpened, func(DomainEvent) {
		dropped.Add(1)
	})
	b.Subscribe(EventDialogOpened, func(DomainEvent) {
		kept.Add(1)
		done <- struct{}{}
	})
	unsubscribe()

	b.Publish(DialogOpenedEvent{Mode: domain.ModeEdit})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("remaining subscriber was not called")
	}
	// Give a stray delivery a chance to show up
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, int32(1), kept.Load())
	require.Equal(t, int32(0), dropped.Load())
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New()
	defer b.Close()

	done := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) {
		panic("boom")
	})
	b.Subscribe(EventDialogClosed, func(DomainEvent) {
		done <- struct{}{}
	})

	b.Publish(ErrorEvent{Message: "x"})
	b.Publish(DialogClosedEvent{Mode: domain.ModeCreate})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("bus stopped after handler panic")
	}
}

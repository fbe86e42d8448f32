package events

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNames = [2]string{"Player A", "Player B"}
	testBoard = "<4,4,4,4,4,4,4,4,4,4,4,4>"
)

// TestSubscriber is a test implementation of Subscriber
type TestSubscriber struct {
	id              string
	interestedTypes map[string]bool
	mu              sync.Mutex
	receivedEvents  []Event
}

func NewTestSubscriber(id string, types ...string) *TestSubscriber {
	ts := &TestSubscriber{id: id}
	if len(types) > 0 {
		ts.interestedTypes = make(map[string]bool)
		for _, t := range types {
			ts.interestedTypes[t] = true
		}
	}
	return ts
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(e Event) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.receivedEvents = append(ts.receivedEvents, e)
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if ts.interestedTypes == nil {
		return true
	}
	return ts.interestedTypes[eventType]
}

func (ts *TestSubscriber) Received() []Event {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]Event(nil), ts.receivedEvents...)
}

func TestEventBus(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	received := false
	var receivedEvent Event

	bus.SubscribeFunc(TypeGameStarted, func(e Event) {
		received = true
		receivedEvent = e
	})

	bus.Publish(NewGameStartedEvent("test-game", testNames, [2]bool{false, true}, testBoard))

	assert.True(t, received, "Event handler should have been called")
	require.NotNil(t, receivedEvent)
	assert.Equal(t, TypeGameStarted, receivedEvent.Type())
	assert.Equal(t, "test-game", receivedEvent.GameID())

	started, ok := receivedEvent.(*GameStartedEvent)
	require.True(t, ok)
	assert.Equal(t, testNames, started.PlayerNames)
	assert.True(t, started.AIPlayers[1])
}

func TestEventBusMultipleSubscribers(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	handler1Called := false
	handler2Called := false

	id1 := bus.SubscribeFunc(TypeTurnStarted, func(e Event) { handler1Called = true })
	id2 := bus.SubscribeFunc(TypeTurnStarted, func(e Event) { handler2Called = true })
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, bus.GetFuncHandlerCount(TypeTurnStarted))

	bus.Publish(NewTurnStartedEvent("test-game", 1, 0))

	assert.True(t, handler1Called)
	assert.True(t, handler2Called)
}

func TestEventBusSubscriber(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	all := NewTestSubscriber("all")
	endOnly := NewTestSubscriber("end-only", TypeGameEnded)
	bus.Subscribe(all)
	bus.Subscribe(endOnly)
	assert.Equal(t, 2, bus.GetSubscriberCount())

	bus.Publish(NewGameStartedEvent("test-game", testNames, [2]bool{}, testBoard))
	bus.Publish(NewTurnStartedEvent("test-game", 1, 0))
	bus.Publish(NewGameEndedEvent("test-game", 0, [2]int{25, 10}, 13, time.Minute, 100))

	assert.Len(t, all.Received(), 3)
	require.Len(t, endOnly.Received(), 1)

	ended := endOnly.Received()[0].(*GameEndedEvent)
	assert.Equal(t, 0, ended.Winner)
	assert.Equal(t, [2]int{25, 10}, ended.Scores)
	assert.Equal(t, 100, ended.FinalTurn)
	assert.Equal(t, 100, ended.Metadata.Turn)
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())
	sub := NewTestSubscriber("sub")
	bus.Subscribe(sub)

	bus.Publish(NewTurnStartedEvent("g", 1, 0))
	bus.Unsubscribe("sub")
	bus.Publish(NewTurnStartedEvent("g", 2, 1))

	assert.Len(t, sub.Received(), 1)
	assert.Equal(t, 0, bus.GetSubscriberCount())
}

func TestEventBusPanicRecovery(t *testing.T) {
	var buf bytes.Buffer
	bus := NewEventBus(zerolog.New(&buf))

	called := false
	bus.SubscribeFunc(TypeMoveExecuted, func(e Event) { panic("boom") })
	bus.SubscribeFunc(TypeMoveExecuted, func(e Event) { called = true })

	assert.NotPanics(t, func() {
		bus.Publish(NewMoveExecutedEvent("g", 0, 0, 0, 4, 4, testBoard, 1))
	})
	assert.True(t, called, "later handlers still run after a panic")
	assert.Contains(t, buf.String(), "Event handler panicked")
}

func TestEventConstructors(t *testing.T) {
	before := time.Now()

	tests := []struct {
		name     string
		event    Event
		wantType string
	}{
		{"game started", NewGameStartedEvent("g", testNames, [2]bool{}, testBoard), TypeGameStarted},
		{"game ended", NewGameEndedEvent("g", -1, [2]int{24, 24}, 0, time.Second, 10), TypeGameEnded},
		{"turn started", NewTurnStartedEvent("g", 3, 0), TypeTurnStarted},
		{"turn ended", NewTurnEndedEvent("g", 3, 0, time.Millisecond), TypeTurnEnded},
		{"move rejected", NewMoveRejectedEvent("g", 0, 3, "empty", 3), TypeMoveRejected},
		{"move executed", NewMoveExecutedEvent("g", 0, 3, 3, 7, 4, testBoard, 3), TypeMoveExecuted},
		{"seeds captured", NewSeedsCapturedEvent("g", 0, []int{7}, 2, 2, 3), TypeSeedsCaptured},
		{"state transition", NewStateTransitionEvent("g", "Setup", "InProgress", "start"), TypeStateTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.event.Type())
			assert.Equal(t, "g", tt.event.GameID())
			assert.False(t, tt.event.Timestamp().Before(before))
		})
	}
}

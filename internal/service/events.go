package service

import (
	"sync"
	"time"
)

const (
	EventSignedIn        = "signed_in"
	EventSignedOut       = "signed_out"
	EventPasswordUpdated = "password_updated"
)

type AuthEvent struct {
	Type  string    `json:"type"`
	Email string    `json:"email"`
	At    time.Time `json:"at"`
}

// EventBroker fans session-change events out to subscribed clients.
// Slow subscribers drop events instead of blocking a login.
type EventBroker struct {
	mu   sync.RWMutex
	subs map[chan AuthEvent]struct{}
}

func NewEventBroker() *EventBroker {
	return &EventBroker{subs: make(map[chan AuthEvent]struct{})}
}

func (b *EventBroker) Subscribe() chan AuthEvent {
	ch := make(chan AuthEvent, 8)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *EventBroker) Unsubscribe(ch chan AuthEvent) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
	close(ch)
}

func (b *EventBroker) Publish(eventType, email string) {
	event := AuthEvent{Type: eventType, Email: email, At: time.Now()}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

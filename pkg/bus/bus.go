// Package bus provides a synchronous in-process event bus for surface
// lifecycle notifications. Subjects are dot-separated and subscriptions
// support wildcards: "*" matches one token, ">" matches the rest.
// Delivery happens inline on the publisher's goroutine, which keeps the
// frame loop's single-threaded model intact; handlers must not block.
package bus

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrClosed is returned when operating on a closed bus.
var ErrClosed = errors.New("bus closed")

// Event is one published notification.
type Event struct {
	ID      string
	Subject string
	Payload any
	Time    time.Time
}

// Handler receives published events. Handlers run synchronously on the
// publisher's goroutine, in subscription order.
type Handler func(ev Event)

// Bus fans events out to pattern subscriptions.
type Bus struct {
	mu     sync.RWMutex
	subs   []*Subscription
	nextID uint64
	closed bool
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// Publish delivers an event to every matching subscription before
// returning.
func (b *Bus) Publish(subject string, payload any) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrClosed
	}
	// Copy matching handlers so a handler may unsubscribe during delivery.
	var matched []Handler
	for _, sub := range b.subs {
		if matchSubject(sub.pattern, subject) {
			matched = append(matched, sub.handler)
		}
	}
	b.mu.RUnlock()

	if len(matched) == 0 {
		return nil
	}
	ev := Event{
		ID:      ulid.Make().String(),
		Subject: subject,
		Payload: payload,
		Time:    time.Now(),
	}
	for _, h := range matched {
		h(ev)
	}
	return nil
}

// Subscribe registers a handler for subjects matching pattern.
func (b *Bus) Subscribe(pattern string, handler Handler) (*Subscription, error) {
	if handler == nil {
		return nil, errors.New("nil handler")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrClosed
	}
	b.nextID++
	sub := &Subscription{
		id:      b.nextID,
		pattern: pattern,
		handler: handler,
		bus:     b,
	}
	b.subs = append(b.subs, sub)
	return sub, nil
}

// Close drops all subscriptions. Further publishes fail with ErrClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	b.closed = true
	b.subs = nil
	return nil
}

// Subscription is an active pattern registration.
type Subscription struct {
	id      uint64
	pattern string
	handler Handler
	bus     *Bus
}

// Pattern returns the subject pattern this subscription matches.
func (s *Subscription) Pattern() string {
	return s.pattern
}

// Unsubscribe removes the subscription. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	subs := s.bus.subs
	for i, have := range subs {
		if have.id == s.id {
			s.bus.subs = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// matchSubject checks a subject against a pattern with wildcards.
// "*" matches exactly one token; ">" matches one or more and must be last.
func matchSubject(pattern, subject string) bool {
	if pattern == subject {
		return true
	}

	patternParts := strings.Split(pattern, ".")
	subjectParts := strings.Split(subject, ".")

	pi, si := 0, 0
	for pi < len(patternParts) && si < len(subjectParts) {
		switch patternParts[pi] {
		case "*":
			pi++
			si++
		case ">":
			return true
		default:
			if patternParts[pi] != subjectParts[si] {
				return false
			}
			pi++
			si++
		}
	}

	return pi == len(patternParts) && si == len(subjectParts)
}

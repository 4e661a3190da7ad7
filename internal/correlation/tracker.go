// Package correlation pairs commands sent to an embedded application with
// the events it emits in reply, by correlation id.
//
// The table of unanswered commands is bounded: once it holds Capacity
// entries, tracking another command evicts the oldest one.
package correlation

import (
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/roach88/afmkit/embedding"
)

// DefaultCapacity is the number of pending commands kept when none is configured.
const DefaultCapacity = 256

var (
	// ErrNotCommand is returned when Track is given something other than a command.
	ErrNotCommand = errors.New("correlation: not a command")

	// ErrAlreadyTracked is returned when a command reuses a pending correlation id.
	ErrAlreadyTracked = errors.New("correlation: id already pending")
)

// Pending is a command awaiting its reply.
type Pending struct {
	CorrelationID string
	Command       embedding.Message
	Seq           int64
}

// Tracker records commands until a correlated event arrives. It is safe for
// concurrent use.
type Tracker struct {
	mu      sync.Mutex
	pending *lru.Cache[string, Pending]
	size    int
	ids     embedding.IDGenerator
	clock   *Clock
	onEvict func(Pending)
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithIDGenerator sets the generator used for commands without a correlation id.
func WithIDGenerator(g embedding.IDGenerator) Option {
	return func(t *Tracker) {
		t.ids = g
	}
}

// WithEvictHook registers fn to be called for every command dropped to make room.
func WithEvictHook(fn func(Pending)) Option {
	return func(t *Tracker) {
		t.onEvict = fn
	}
}

// New returns a tracker holding at most capacity pending commands. A
// capacity below 1 selects DefaultCapacity.
func New(capacity int, opts ...Option) (*Tracker, error) {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[string, Pending](capacity)
	if err != nil {
		return nil, fmt.Errorf("correlation: %w", err)
	}

	t := &Tracker{
		pending: cache,
		size:    capacity,
		ids:     embedding.UUIDv7Generator{},
		clock:   NewClock(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Track records cmd as pending and returns it as a message. A command
// without a correlation id is assigned one.
func (t *Tracker) Track(cmd embedding.Envelope) (embedding.Message, error) {
	if cmd == nil || cmd.Kind() != embedding.KindCommand {
		return embedding.Message{}, ErrNotCommand
	}

	msg, err := embedding.ToMessage(cmd)
	if err != nil {
		return embedding.Message{}, fmt.Errorf("correlation: %w", err)
	}

	t.mu.Lock()
	if msg.CorrelationID == "" {
		msg.CorrelationID = t.ids.Generate()
	}
	if t.pending.Contains(msg.CorrelationID) {
		t.mu.Unlock()
		return embedding.Message{}, fmt.Errorf("%w: %s", ErrAlreadyTracked, msg.CorrelationID)
	}

	var (
		evicted    Pending
		hasEvicted bool
	)
	if t.pending.Len() >= t.size {
		_, evicted, hasEvicted = t.pending.GetOldest()
	}
	t.pending.Add(msg.CorrelationID, Pending{
		CorrelationID: msg.CorrelationID,
		Command:       msg,
		Seq:           t.clock.Next(),
	})
	t.mu.Unlock()

	if hasEvicted && t.onEvict != nil {
		t.onEvict(evicted)
	}
	return msg, nil
}

// Resolve removes and returns the command the event replies to. It reports
// false for anything that is not an event, for events without a correlation
// id and for ids that are not pending.
func (t *Tracker) Resolve(evt embedding.Envelope) (Pending, bool) {
	if evt == nil || evt.Kind() != embedding.KindEvent {
		return Pending{}, false
	}
	id := evt.Correlation()
	if id == "" {
		return Pending{}, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.pending.Peek(id)
	if !ok {
		return Pending{}, false
	}
	t.pending.Remove(id)
	return p, true
}

// Lookup returns the pending command for id without resolving it.
func (t *Tracker) Lookup(id string) (Pending, bool) {
	return t.pending.Peek(id)
}

// Pending returns the number of unanswered commands.
func (t *Tracker) Pending() int {
	return t.pending.Len()
}

// Outstanding returns the unanswered commands, oldest first.
func (t *Tracker) Outstanding() []Pending {
	return t.pending.Values()
}

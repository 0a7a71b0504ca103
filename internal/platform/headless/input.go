// Package headless drives a lane engine without a terminal UI: scripted or
// automatic input and plain-text frames, for simulations and tests.
package headless

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vovakirdan/spikelane/internal/lane"
)

// ChannelInput is an input source fed from other goroutines.
// Poll never blocks; Send drops the action when the buffer is full.
type ChannelInput struct {
	ch   chan lane.MoveAction
	done chan struct{}
	once sync.Once
}

// NewChannelInput creates a channel input buffering up to size actions.
func NewChannelInput(size int) *ChannelInput {
	if size < 1 {
		size = 1
	}
	return &ChannelInput{
		ch:   make(chan lane.MoveAction, size),
		done: make(chan struct{}),
	}
}

// Send queues an action. It returns false if the input is closed or full.
func (c *ChannelInput) Send(a lane.MoveAction) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.ch <- a:
		return true
	default:
		return false
	}
}

// Poll implements lane.InputSource.
func (c *ChannelInput) Poll() (lane.MoveAction, bool) {
	select {
	case a := <-c.ch:
		return a, true
	default:
		return lane.MoveNone, false
	}
}

// Close stops accepting actions. It is safe to call more than once.
func (c *ChannelInput) Close() error {
	c.once.Do(func() { close(c.done) })
	return nil
}

// Done is closed once the input was closed.
func (c *ChannelInput) Done() <-chan struct{} {
	return c.done
}

// ScriptInput replays a fixed list of actions, one per tick, then reports
// nothing pending.
type ScriptInput struct {
	actions []lane.MoveAction
	next    int
}

// NewScriptInput creates a script from actions.
func NewScriptInput(actions ...lane.MoveAction) *ScriptInput {
	return &ScriptInput{actions: append([]lane.MoveAction(nil), actions...)}
}

// ParseScript parses a comma or space separated list such as "l,r,.,none".
func ParseScript(s string) (*ScriptInput, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	actions := make([]lane.MoveAction, 0, len(fields))
	for i, f := range fields {
		a, err := lane.ParseMoveAction(f)
		if err != nil {
			return nil, fmt.Errorf("headless: script step %d: %w", i+1, err)
		}
		actions = append(actions, a)
	}
	return NewScriptInput(actions...), nil
}

// Poll implements lane.InputSource.
func (s *ScriptInput) Poll() (lane.MoveAction, bool) {
	if s.next >= len(s.actions) {
		return lane.MoveNone, false
	}
	a := s.actions[s.next]
	s.next++
	return a, true
}

// Remaining returns the number of actions not played yet.
func (s *ScriptInput) Remaining() int {
	return len(s.actions) - s.next
}

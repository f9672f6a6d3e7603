// Package notify collects user-facing notifications for the UI to drain.
// Identical messages are suppressed inside a short window so repeated
// failures do not stack up as duplicate toasts.
package notify

import (
	"sync"
	"time"
)

// Level classifies a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Message is one pending notification.
type Message struct {
	Level Level
	Text  string
	At    time.Time
}

const (
	defaultDedupeWindow = 3 * time.Second
	maxPending          = 16
)

// Center queues notifications and deduplicates them by message text.
// The zero value is not usable; construct with NewCenter.
type Center struct {
	mu       sync.Mutex
	window   time.Duration
	lastSeen map[string]time.Time
	pending  []Message
	now      func() time.Time
}

// NewCenter builds a Center with the default dedupe window.
func NewCenter() *Center {
	return &Center{
		window:   defaultDedupeWindow,
		lastSeen: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Success queues a success notification.
func (c *Center) Success(text string) { c.push(LevelSuccess, text) }

// Error queues an error notification.
func (c *Center) Error(text string) { c.push(LevelError, text) }

// Info queues an informational notification.
func (c *Center) Info(text string) { c.push(LevelInfo, text) }

func (c *Center) push(level Level, text string) {
	if text == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if seen, ok := c.lastSeen[text]; ok && now.Sub(seen) < c.window {
		return
	}
	c.lastSeen[text] = now

	c.pending = append(c.pending, Message{Level: level, Text: text, At: now})
	if len(c.pending) > maxPending {
		c.pending = c.pending[len(c.pending)-maxPending:]
	}
}

// Pending returns and clears the queued notifications in arrival order.
func (c *Center) Pending() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pending) == 0 {
		return nil
	}
	drained := c.pending
	c.pending = nil
	return drained
}

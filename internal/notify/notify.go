// Package notify keeps the toast-style notification feed. Entries expire five
// seconds after creation; failures surface here instead of crashing handlers.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const ttl = 5 * time.Second

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Center collects notifications and drops them as they expire.
type Center struct {
	mu      sync.Mutex
	entries []Notification
	now     func() time.Time
}

func NewCenter() *Center {
	return &Center{now: time.Now}
}

func (c *Center) Success(msg string) Notification { return c.push(LevelSuccess, msg) }
func (c *Center) Info(msg string) Notification    { return c.push(LevelInfo, msg) }
func (c *Center) Error(msg string) Notification   { return c.push(LevelError, msg) }

func (c *Center) push(level Level, msg string) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   msg,
		CreatedAt: c.now(),
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prune()
	c.entries = append(c.entries, n)
	return n
}

// Active returns the notifications that have not yet expired.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prune()
	out := make([]Notification, len(c.entries))
	copy(out, c.entries)
	return out
}

// Dismiss removes a notification before its timeout.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.entries {
		if n.ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Center) prune() {
	cutoff := c.now().Add(-ttl)
	kept := c.entries[:0]
	for _, n := range c.entries {
		if n.CreatedAt.After(cutoff) {
			kept = append(kept, n)
		}
	}
	c.entries = kept
}

// Package clock provides a mockable wall-clock source.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

// Now returns the current local time.
func (Real) Now() time.Time {
	return time.Now()
}

// Mock is a clock whose time only moves when told to.
type Mock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewMock creates a mock clock set to t.
func NewMock(t time.Time) *Mock {
	return &Mock{current: t}
}

// Now returns the mock time.
func (mock *Mock) Now() time.Time {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.current
}

// Set moves the mock to t.
func (mock *Mock) Set(t time.Time) {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	mock.current = t
}

// Advance moves the mock forward by d.
func (mock *Mock) Advance(d time.Duration) {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	mock.current = mock.current.Add(d)
}

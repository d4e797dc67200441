// Package biztime centralizes the service clock. All storage and transport
// use UTC; the business timezone only affects human-facing rendering.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is used when no timezone is configured.
const DefaultTimezone = "UTC"

var (
	bizLocation *time.Location
	locMu       sync.RWMutex

	clockMu sync.RWMutex
	clock   = time.Now
)

// Init sets the business timezone. An empty name selects UTC.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	locMu.Lock()
	bizLocation = loc
	locMu.Unlock()
	return nil
}

// Location returns the business timezone, UTC until Init succeeds.
func Location() *time.Location {
	locMu.RLock()
	defer locMu.RUnlock()
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock().UTC()
}

// SetClock replaces the time source and returns a func restoring the previous one.
func SetClock(fn func() time.Time) (restore func()) {
	clockMu.Lock()
	prev := clock
	clock = fn
	clockMu.Unlock()
	return func() {
		clockMu.Lock()
		clock = prev
		clockMu.Unlock()
	}
}

// ToUTC normalizes a timestamp read back from storage.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// ToBizTimezone converts t for display.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}

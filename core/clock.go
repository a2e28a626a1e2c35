package core

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

var (
	coarseClockOnce sync.Once
	coarseNow       unsafe.Pointer // *time.Time, nil until StartCoarseClock
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. Once started, Now and Timestamp read the
// cached value instead of calling time.Now on every log call. It is
// safe to call multiple times; the goroutine is started exactly once
// and runs for the lifetime of the process, which is intentional
// because logging typically spans the entire application lifecycle.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
			}
		}()
	})
}

// CoarseNow returns the most recently cached time.Time value.
// StartCoarseClock must have been called before using CoarseNow.
func CoarseNow() time.Time {
	return *(*time.Time)(atomic.LoadPointer(&coarseNow))
}

// Now returns the cached coarse time when the coarse clock is running,
// and time.Now() otherwise.
func Now() time.Time {
	if p := (*time.Time)(atomic.LoadPointer(&coarseNow)); p != nil {
		return *p
	}
	return time.Now()
}

// Timestamp returns the current time as an ISO-8601 (RFC 3339) string
// in UTC. It is the timestamp source of the default enrich strategy.
func Timestamp() string {
	return Now().UTC().Format(time.RFC3339Nano)
}

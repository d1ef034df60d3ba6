package events

import (
	"sync"
	"time"
)

// Debounce wraps h so it runs once, with the last payload seen, after
// emits have been quiet for wait. The returned stop function cancels any
// pending invocation and must be called when the subscription is
// removed, otherwise the owned timer can fire after teardown.
func Debounce(wait time.Duration, h Handler) (wrapped Handler, stop func()) {
	var mu sync.Mutex
	var timer *time.Timer

	wrapped = func(payload any) {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, func() {
			h(payload)
		})
	}
	stop = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
			timer = nil
		}
	}
	return wrapped, stop
}

// Throttle wraps h so it runs at most once per interval. The first
// payload in each interval is delivered immediately; payloads arriving
// inside the interval are dropped. Stop releases the interval state.
func Throttle(interval time.Duration, h Handler) (wrapped Handler, stop func()) {
	var mu sync.Mutex
	var last time.Time
	stopped := false

	wrapped = func(payload any) {
		mu.Lock()
		if stopped || time.Since(last) < interval {
			mu.Unlock()
			return
		}
		last = time.Now()
		mu.Unlock()
		h(payload)
	}
	stop = func() {
		mu.Lock()
		defer mu.Unlock()
		stopped = true
	}
	return wrapped, stop
}

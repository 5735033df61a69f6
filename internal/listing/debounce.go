package listing

import (
	"sync"
	"time"
)

// Debounce coalesces rapid-fire calls into one invocation of fn after
// the input has been quiet for the given delay. The returned function
// is safe for concurrent use.
func Debounce(delay time.Duration, fn func()) func() {
	var mu sync.Mutex
	var timer *time.Timer

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, fn)
	}
}

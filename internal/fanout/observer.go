//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks

package fanout

import "time"

// Observer receives lifecycle notifications from a Runner.
//
// TaskSpawned and TaskJoined are called from the goroutine running Run, in
// creation order. TaskSpawned(i) happens before unit i starts, so it always
// precedes TaskFinished(i). TaskFinished is called on the unit's own
// goroutine; implementations must be safe for concurrent use.
type Observer interface {
	TaskSpawned(index int)
	TaskFinished(index int, elapsed time.Duration)
	TaskJoined(index int, wait time.Duration)
}

// NullObserver ignores every notification.
type NullObserver struct{}

func (NullObserver) TaskSpawned(int) {}
func (NullObserver) TaskFinished(int, time.Duration) {}
func (NullObserver) TaskJoined(int, time.Duration) {}

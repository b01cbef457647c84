package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// LikeAnimationWindow is how long a like button keeps its animation class.
const LikeAnimationWindow = 400 * time.Millisecond

// Animator holds short-lived visual flags. A flag clears on its own after the
// window, whatever happens to the request that triggered it.
type Animator interface {
	Trigger(ctx context.Context, key string)
	Active(ctx context.Context, key string) bool
}

func AnimationKey(userID string, postID int64) string {
	return fmt.Sprintf("%s:%d", userID, postID)
}

type memoryAnimator struct {
	mu     sync.Mutex
	window time.Duration
	timers map[string]*time.Timer
}

func NewMemoryAnimator(window time.Duration) Animator {
	if window <= 0 {
		window = LikeAnimationWindow
	}
	return &memoryAnimator{
		window: window,
		timers: make(map[string]*time.Timer),
	}
}

func (a *memoryAnimator) Trigger(_ context.Context, key string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if existing, ok := a.timers[key]; ok {
		existing.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(a.window, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		// A retrigger replaced this timer; leave the newer flag alone.
		if a.timers[key] == timer {
			delete(a.timers, key)
		}
	})
	a.timers[key] = timer
}

func (a *memoryAnimator) Active(_ context.Context, key string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.timers[key]
	return ok
}

package controller

import (
	"container/list"
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"scanguard/pkg/serrors"
)

// DefaultLimiterCapacity bounds the number of keys a RateLimiter tracks.
const DefaultLimiterCapacity = 100_000

type keyedLimiter struct {
	key     string
	limiter *rate.Limiter
}

// RateLimiter is a token bucket rate limiter keyed by an arbitrary request
// attribute. It tracks at most capacity keys; when full, the least recently
// used key is forgotten.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*list.Element
	lru      *list.List
	capacity int
	limit    rate.Limit
	burst    int
	keyFn    func(r *http.Request) string
	now      func() time.Time
}

// NewRateLimiter creates a limiter that allows perMinute requests per key with
// a burst of the same size, tracking up to DefaultLimiterCapacity keys. keyFn
// extracts the key; requests with an empty key are not limited by Handler.
func NewRateLimiter(perMinute int, keyFn func(r *http.Request) string) *RateLimiter {
	return NewRateLimiterWithCapacity(perMinute, DefaultLimiterCapacity, keyFn)
}

// NewRateLimiterWithCapacity is NewRateLimiter with an explicit key capacity.
func NewRateLimiterWithCapacity(perMinute, capacity int, keyFn func(r *http.Request) string) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*list.Element),
		lru:      list.New(),
		capacity: max(capacity, 1),
		limit:    rate.Limit(float64(perMinute) / time.Minute.Seconds()),
		burst:    perMinute,
		keyFn:    keyFn,
		now:      time.Now,
	}
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if el, ok := rl.limiters[key]; ok {
		rl.lru.MoveToFront(el)

		return el.Value.(*keyedLimiter).limiter //nolint: forcetypeassert
	}

	if rl.lru.Len() >= rl.capacity {
		oldest := rl.lru.Back()
		rl.lru.Remove(oldest)
		delete(rl.limiters, oldest.Value.(*keyedLimiter).key) //nolint: forcetypeassert
	}

	kl := &keyedLimiter{key: key, limiter: rate.NewLimiter(rl.limit, rl.burst)}
	rl.limiters[key] = rl.lru.PushFront(kl)

	return kl.limiter
}

// Len returns the number of keys currently tracked.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return rl.lru.Len()
}

// Allow takes one token from key's bucket. When the bucket is empty it returns
// false and how long the caller should wait.
func (rl *RateLimiter) Allow(key string) (time.Duration, bool) {
	if rl.burst <= 0 {
		return 0, true
	}

	now := rl.now()
	reservation := rl.get(key).ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)

		return delay, false
	}

	return 0, true
}

// WriteRateLimited writes a 429 response with a Retry-After header.
func WriteRateLimited(ctx context.Context, w http.ResponseWriter, retryAfter time.Duration) {
	w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
	WriteError(ctx, w, serrors.With(serrors.ErrRateLimited, "rate limit exceeded"))
}

// Handler returns a middleware that rejects requests over the limit with 429.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rl.keyFn(r)
		if key == "" {
			next.ServeHTTP(w, r)

			return
		}

		if delay, ok := rl.Allow(key); !ok {
			WriteRateLimited(r.Context(), w, delay)

			return
		}

		next.ServeHTTP(w, r)
	})
}

package token_bucket

import (
	"sync"
	"time"
)

// Limiter принимает или отклоняет запрос.
type Limiter interface {
	Allow() bool
}

// TokenBucket - классический token bucket: ведро на capacity токенов,
// пополняется со скоростью refillRate токенов в секунду.
type TokenBucket struct {
	capacity   int
	tokens     int
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (b *TokenBucket) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill()

	if b.tokens == 0 {
		return false
	}

	b.tokens--
	return true
}

// refill добавляет только целые токены; lastRefill сдвигается лишь при
// фактическом пополнении, чтобы не терять дробный остаток на частых вызовах.
func (b *TokenBucket) refill() {
	now := time.Now()

	elapsed := now.Sub(b.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	tokensToAdd := int(elapsed * b.refillRate)
	if tokensToAdd == 0 {
		return
	}

	b.tokens += tokensToAdd
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
}

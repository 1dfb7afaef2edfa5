package token_bucket

import (
	"sync"
	"time"
)

// KeyedLimiter - набор корзин токенов, по одной на ключ (например, адрес
// клиента). Один шумный клиент не выедает лимит остальных.
type KeyedLimiter struct {
	capacity   float64
	refillRate float64 // токенов в секунду
	idleTTL    time.Duration
	now        func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

type Option func(*KeyedLimiter)

// WithClock подменяет часы, нужен тестам.
func WithClock(now func() time.Time) Option {
	return func(l *KeyedLimiter) {
		l.now = now
	}
}

// WithIdleTTL - через сколько простоя корзина ключа забывается.
func WithIdleTTL(ttl time.Duration) Option {
	return func(l *KeyedLimiter) {
		l.idleTTL = ttl
	}
}

func NewKeyedLimiter(capacity int, refillRate float64, opts ...Option) *KeyedLimiter {
	l := &KeyedLimiter{
		capacity:   float64(capacity),
		refillRate: refillRate,
		idleTTL:    10 * time.Minute,
		now:        time.Now,
		buckets:    make(map[string]*bucket),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep = l.now()

	return l
}

func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.capacity, lastRefill: now}
		l.buckets[key] = b
	}
	l.refill(b, now)

	if b.tokens < 1 {
		return false
	}
	b.tokens--

	return true
}

// Len - число отслеживаемых ключей.
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.buckets)
}

func (l *KeyedLimiter) refill(b *bucket, now time.Time) {
	elapsed := now.Sub(b.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	b.tokens += elapsed * l.refillRate
	if b.tokens > l.capacity {
		b.tokens = l.capacity
	}
	b.lastRefill = now
}

// sweep не чаще раза в idleTTL выбрасывает корзины, которых не касались
// дольше idleTTL. Такая корзина всё равно была бы полной.
func (l *KeyedLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	for key, b := range l.buckets {
		if now.Sub(b.lastRefill) >= l.idleTTL {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

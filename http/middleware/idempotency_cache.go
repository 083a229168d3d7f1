package middleware

import (
	"bytes"
	"context"
	"encoding/gob"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultIdempotencyTTL is how long a recorded response is replayed for.
const DefaultIdempotencyTTL = 24 * time.Hour

const idemRedisPrefix = "idempotency:"

var (
	_ IdempotencyCacher = (*IdemResMap)(nil)
	_ IdempotencyCacher = IdemResRedis{}
)

// An IdempotencyCacher stores the IdemRes recorded for each idempotency key.
// Get reports false for keys it does not hold, including expired ones.
//
// Claim pairs res with key only if key is not held yet, reporting true when it did.
// Otherwise it returns the IdemRes already held. Claim must be atomic:
// of concurrent claims on one key, exactly one succeeds.
type IdempotencyCacher interface {
	Claim(ctx context.Context, key string, res IdemRes) (IdemRes, bool)
	Get(ctx context.Context, key string) (IdemRes, bool)
	Set(ctx context.Context, key string, res IdemRes)
}

// An IdemResMap keeps IdemRes in memory.
// Restarts lose every key, and processes do not share them,
// so prefer IdemResRedis when running more than one.
type IdemResMap struct {
	mu  sync.Mutex
	ttl time.Duration
	val map[string]idemResEntry
}

type idemResEntry struct {
	IdemRes
	at time.Time
}

// NewIdemResMap constructs an IdemResMap forgetting keys ttl after they were last set.
func NewIdemResMap(ttl time.Duration) *IdemResMap {
	return &IdemResMap{ttl: ttl, val: make(map[string]idemResEntry)}
}

func (m *IdemResMap) Claim(ctx context.Context, key string, res IdemRes) (IdemRes, bool) {
	if ctx.Err() != nil {
		return IdemRes{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.val[key]; ok && time.Since(e.at) <= m.ttl {
		return e.IdemRes, false
	}

	m.evict()
	m.val[key] = idemResEntry{IdemRes: res, at: time.Now()}
	return res, true
}

func (m *IdemResMap) Get(ctx context.Context, key string) (IdemRes, bool) {
	if key == "" || ctx.Err() != nil {
		return IdemRes{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.val[key]
	if !ok || time.Since(e.at) > m.ttl {
		return IdemRes{}, false
	}
	return e.IdemRes, true
}

// Set pairs res with key, evicting expired keys first.
func (m *IdemResMap) Set(ctx context.Context, key string, res IdemRes) {
	if ctx.Err() != nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.evict()
	m.val[key] = idemResEntry{IdemRes: res, at: time.Now()}
}

// evict deletes expired keys; m.mu must be held.
func (m *IdemResMap) evict() {
	for k, e := range m.val {
		if time.Since(e.at) > m.ttl {
			delete(m.val, k)
		}
	}
}

// An IdemResRedis keeps gob-encoded IdemRes in Redis, expiring them after its TTL.
type IdemResRedis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache constructs an IdemResRedis connecting with opts.
func NewRedisCache(opts *redis.Options, ttl time.Duration) IdemResRedis {
	return IdemResRedis{client: redis.NewClient(opts), ttl: ttl}
}

// NewRedisCacheFromURL constructs an IdemResRedis connecting to a redis:// URL.
func NewRedisCacheFromURL(rawURL string, ttl time.Duration) (IdemResRedis, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return IdemResRedis{}, err
	}

	return NewRedisCache(opts, ttl), nil
}

// Claim sets key with SETNX.
// When Redis cannot be reached, Claim reports true so the request is still handled.
func (c IdemResRedis) Claim(ctx context.Context, key string, res IdemRes) (IdemRes, bool) {
	b, err := encodeIdemRes(res)
	if err != nil {
		return res, true
	}

	set, err := c.client.SetNX(ctx, idemRedisPrefix+key, b, c.ttl).Result()
	if err != nil {
		return res, true
	}
	if set {
		return res, true
	}

	// NOTE: a key expiring between SETNX and GET reads as in progress
	prev, _ := c.Get(ctx, key)
	return prev, false
}

// Get reports false when Redis cannot be reached as well as for unknown keys.
func (c IdemResRedis) Get(ctx context.Context, key string) (IdemRes, bool) {
	b, err := c.client.Get(ctx, idemRedisPrefix+key).Bytes()
	if err != nil {
		return IdemRes{}, false
	}

	var res IdemRes
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&res); err != nil {
		return IdemRes{}, false
	}
	return res, true
}

// Set drops res silently when Redis cannot be reached;
// the request is then handled again on retry.
func (c IdemResRedis) Set(ctx context.Context, key string, res IdemRes) {
	b, err := encodeIdemRes(res)
	if err != nil {
		return
	}

	c.client.Set(ctx, idemRedisPrefix+key, b, c.ttl)
}

func encodeIdemRes(res IdemRes) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(res); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Close closes the connection pool to Redis.
func (c IdemResRedis) Close() error { return c.client.Close() }

package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GoArmGo/PinAlbum/internal/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_TryLock(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()
	place := uuid.New()
	other := uuid.New()

	unlock, ok, err := l.TryLock(ctx, place)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = l.TryLock(ctx, place)
	require.NoError(t, err)
	assert.False(t, ok, "second lock on the same place must be refused")

	unlockOther, ok, err := l.TryLock(ctx, other)
	require.NoError(t, err)
	assert.True(t, ok)
	unlockOther()

	unlock()
	unlock()

	unlock, ok, err = l.TryLock(ctx, place)
	require.NoError(t, err)
	assert.True(t, ok)
	unlock()
}

func TestLocal_SingleWinner(t *testing.T) {
	l := NewLocal()
	place := uuid.New()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
		unlocks []func()
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, ok, _ := l.TryLock(context.Background(), place)
			if ok {
				mu.Lock()
				winners++
				unlocks = append(unlocks, unlock)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
	for _, u := range unlocks {
		u()
	}
}

// fakeRedis реализует RedisClient поверх map
type fakeRedis struct {
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, exists := f.values[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	f.values[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) release(keys []string, args []interface{}) *redis.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.values[keys[0]] == args[0].(string) {
		delete(f.values, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

func (f *fakeRedis) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	return f.release(keys, args)
}

func (f *fakeRedis) EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	return f.release(keys, args)
}

func (f *fakeRedis) EvalRO(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	return f.release(keys, args)
}

func (f *fakeRedis) EvalShaRO(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	return f.release(keys, args)
}

func (f *fakeRedis) ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult([]bool{true}, nil)
}

func (f *fakeRedis) ScriptLoad(ctx context.Context, script string) *redis.StringCmd {
	return redis.NewStringResult("sha", nil)
}

func TestRedis_TryLock(t *testing.T) {
	fake := newFakeRedis()
	l := NewRedis(fake, time.Minute, logger.Discard())
	place := uuid.New()
	key := keyPrefix + place.String()

	unlock, ok, err := l.TryLock(context.Background(), place)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Minute, fake.ttls[key])

	_, ok, err = l.TryLock(context.Background(), place)
	require.NoError(t, err)
	assert.False(t, ok)

	unlock()
	assert.NotContains(t, fake.values, key)

	_, ok, err = l.TryLock(context.Background(), place)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedis_UnlockKeepsForeignToken(t *testing.T) {
	fake := newFakeRedis()
	l := NewRedis(fake, time.Minute, logger.Discard())
	place := uuid.New()
	key := keyPrefix + place.String()

	unlock, ok, err := l.TryLock(context.Background(), place)
	require.NoError(t, err)
	require.True(t, ok)

	// ключ истек и место захватил другой процесс
	fake.values[key] = "someone-else"
	unlock()

	assert.Equal(t, "someone-else", fake.values[key])
}

func TestRedis_TryLockError(t *testing.T) {
	fake := newFakeRedis()
	fake.err = errors.New("connection refused")
	l := NewRedis(fake, time.Minute, logger.Discard())

	_, ok, err := l.TryLock(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.False(t, ok)
}

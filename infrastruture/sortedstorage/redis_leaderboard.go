package sortedstorage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/loopgrid/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix       = "loopgrid"
	leaderboardKeyFmt   = "%s:leaderboard:%dx%d"
	leaderboardLockFmt  = "%s:lock"
	leaderboardLockTTL  = 2 * time.Second
	leaderboardRetries  = 8
	leaderboardRetryGap = 25 * time.Millisecond
)

var _ i.Leaderboard = &RedisLeaderboard{}

// RedisLeaderboard keeps one sorted set per board size, scored by a player's best solve time
// in milliseconds.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
}

// NewRedisLeaderboard initializes a RedisLeaderboard with the provided Redis client.
// An empty prefix falls back to the default key prefix.
func NewRedisLeaderboard(client *redis.Client, prefix string) *RedisLeaderboard {
	if prefix == "" {
		prefix = defaultPrefix
	}
	pool := goredis.NewPool(client)
	return &RedisLeaderboard{
		client: client,
		locker: redsync.New(pool),
		prefix: prefix,
	}
}

// Key returns the sorted set key for a board size.
func (rl *RedisLeaderboard) Key(width, height int) string {
	return fmt.Sprintf(leaderboardKeyFmt, rl.prefix, width, height)
}

// Record stores d as the player's time when it beats the stored one.
// The read-compare-write runs under a distributed lock on the board size.
func (rl *RedisLeaderboard) Record(ctx context.Context, width, height int, username string, d time.Duration) (bool, error) {
	key := rl.Key(width, height)
	mutex := rl.locker.NewMutex(
		fmt.Sprintf(leaderboardLockFmt, key),
		redsync.WithExpiry(leaderboardLockTTL),
		redsync.WithTries(leaderboardRetries),
		redsync.WithRetryDelay(leaderboardRetryGap),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return false, fmt.Errorf("obtaining leaderboard lock: %w", err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	score := float64(d.Milliseconds())
	current, err := rl.client.ZScore(ctx, key, username).Result()
	hasCurrent := true
	switch {
	case errors.Is(err, redis.Nil):
		hasCurrent = false
	case err != nil:
		return false, err
	}
	if !improves(current, hasCurrent, score) {
		return false, nil
	}

	if err := rl.client.ZAdd(ctx, key, redis.Z{Score: score, Member: username}).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// improves reports whether score should replace the stored one. Scores are times, so lower wins;
// a tie keeps the earlier entry.
func improves(stored float64, hasStored bool, score float64) bool {
	return !hasStored || score < stored
}

// Top returns up to n players with the lowest times.
func (rl *RedisLeaderboard) Top(ctx context.Context, width, height int, n int64) ([]i.LeaderboardEntry, error) {
	if n <= 0 {
		return nil, nil
	}

	members, err := rl.client.ZRangeWithScores(ctx, rl.Key(width, height), 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]i.LeaderboardEntry, 0, len(members))
	for _, m := range members {
		name, ok := m.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, i.LeaderboardEntry{
			Username: name,
			Best:     time.Duration(m.Score) * time.Millisecond,
		})
	}
	return entries, nil
}

package sortedstorage

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestImproves(t *testing.T) {
	cases := []struct {
		name      string
		stored    float64
		hasStored bool
		score     float64
		want      bool
	}{
		{"First solve on a size", 0, false, 9000, true},
		{"Faster time replaces", 9000, true, 8500, true},
		{"Slower time is ignored", 9000, true, 12000, false},
		{"Equal time keeps the earlier entry", 9000, true, 9000, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, improves(tc.stored, tc.hasStored, tc.score))
		})
	}
}

func TestLeaderboardKey(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	assert.Equal(t, "loopgrid:leaderboard:8x5", NewRedisLeaderboard(client, "").Key(8, 5))
	assert.Equal(t, "games:leaderboard:20x20", NewRedisLeaderboard(client, "games").Key(20, 20))
}

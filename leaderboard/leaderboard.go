package leaderboard

import (
	"context"

	"peer2learn/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const rankingKey = "peer2learn:ranking"

// Entry is one row of the public ranking.
type Entry struct {
	Username string
	Points   int
}

// Cache mirrors the users' points into a redis sorted set so the ranking
// page can be served without hitting the database. The database stays the
// source of truth; the cache is rebuilt periodically and on startup.
type Cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Ranking is the global cache instance; nil when redis is not configured.
var Ranking *Cache

// Enabled reports whether the cache can be used. Safe on a nil receiver.
func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Update writes a single user's score. A no-op when the cache is disabled.
func (c *Cache) Update(ctx context.Context, username string, points int) error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.ZAdd(ctx, rankingKey, redis.Z{
		Score:  float64(points),
		Member: username,
	}).Err()
}

// Top returns all cached entries ordered by points descending.
func (c *Cache) Top(ctx context.Context) ([]Entry, error) {
	if !c.Enabled() {
		return nil, nil
	}
	zs, err := c.rdb.ZRevRangeWithScores(ctx, rankingKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(zs))
	for _, z := range zs {
		username, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Username: username, Points: int(z.Score)})
	}
	return entries, nil
}

// Rebuild repopulates the sorted set from the users table, repairing any
// drift between the cache and the database.
func (c *Cache) Rebuild(ctx context.Context, db *gorm.DB) error {
	if !c.Enabled() {
		return nil
	}

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return err
	}

	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, rankingKey)
	for _, u := range users {
		pipe.ZAdd(ctx, rankingKey, redis.Z{
			Score:  float64(u.Points),
			Member: u.Username,
		})
	}
	_, err := pipe.Exec(ctx)
	return err
}

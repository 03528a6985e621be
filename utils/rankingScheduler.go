package utils

import (
	"context"
	"log"
	"time"

	"peer2learn/database"
	"peer2learn/leaderboard"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[RANKING-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartRankingScheduler periodically rebuilds the ranking cache from the
// database to repair any drift. Only started when redis is configured.
func StartRankingScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@every 5m", rebuildRanking)
	if err != nil {
		logScheduler("Failed to register rebuild job: " + err.Error())
		return c
	}

	c.Start()
	logScheduler("Started, rebuilding ranking cache every 5 minutes")
	return c
}

func rebuildRanking() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := leaderboard.Ranking.Rebuild(ctx, database.Database.Db); err != nil {
		logScheduler("Rebuild failed: " + err.Error())
		return
	}
	logScheduler("Ranking cache rebuilt")
}

package main

import (
	"context"
	"log"

	"peer2learn/config"
	"peer2learn/database"
	"peer2learn/leaderboard"
	authRoutes "peer2learn/routers/authRoutes"
	courseRoutes "peer2learn/routers/courseRoutes"
	homeRoutes "peer2learn/routers/homeRoutes"
	userProfileRoutes "peer2learn/routers/userRoutes"
	"peer2learn/session"
	"peer2learn/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Sessions and the ranking cache move to redis when configured;
	// otherwise sessions live in memory and /ranking queries the database.
	if addr := config.AppConfig.RedisAddr; addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		session.Sessions = session.NewRedisStore(rdb)
		leaderboard.Ranking = leaderboard.NewCache(rdb)

		if err := leaderboard.Ranking.Rebuild(context.Background(), database.Database.Db); err != nil {
			log.Printf("Warning: initial ranking cache rebuild failed: %v", err)
		}
		utils.StartRankingScheduler()
	} else {
		session.Sessions = session.NewMemoryStore()
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST",
		AllowHeaders: "Content-Type",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	homeRoutes.SetupHomeRoutes(app)
	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	userProfileRoutes.SetupUserRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

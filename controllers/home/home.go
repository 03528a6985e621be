package homeController

import (
	"fmt"
	"log"
	"strings"

	"peer2learn/database"
	"peer2learn/leaderboard"
	"peer2learn/middleware"
	"peer2learn/services"
	"peer2learn/views"

	"github.com/gofiber/fiber/v2"
)

// Index renders the landing page. Content varies on session presence.
func Index(c *fiber.Ctx) error {
	if user := middleware.CurrentUser(c); user != nil {
		body := fmt.Sprintf(`<h1>Hello, %s!</h1>
<p><a href="/profile">Profile</a></p>
<p><a href="/courses">Courses</a></p>
<p><a href="/ranking">Ranking</a></p>
<p><a href="/logout">Logout</a></p>`, views.Escape(user.Username))
		return views.Render(c, fiber.StatusOK, "Peer2Learn", body)
	}

	body := `<h1>Welcome to Peer2Learn!</h1>
<p><a href="/login">Login</a></p>
<p><a href="/register">Register</a></p>
<p><a href="/ranking">Ranking</a></p>`
	return views.Render(c, fiber.StatusOK, "Peer2Learn", body)
}

// Ranking renders the public leaderboard, users ordered by points
// descending. Served from the redis cache when available, otherwise
// straight from the database.
func Ranking(c *fiber.Ctx) error {
	entries := cachedRanking(c)
	if entries == nil {
		users, err := services.Ranking(database.Database.Db)
		if err != nil {
			log.Printf("Error fetching ranking: %v", err)
			return views.Render(c, fiber.StatusInternalServerError, "Ranking",
				"<p>Failed to load ranking!</p>")
		}
		entries = make([]leaderboard.Entry, 0, len(users))
		for _, u := range users {
			entries = append(entries, leaderboard.Entry{Username: u.Username, Points: u.Points})
		}
	}

	var b strings.Builder
	b.WriteString("<h2>Ranking</h2><ol>")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("<li>%s &ndash; %d points</li>", views.Escape(e.Username), e.Points))
	}
	b.WriteString("</ol>")

	return views.Render(c, fiber.StatusOK, "Ranking", b.String())
}

// cachedRanking returns cache entries, or nil when the cache is disabled,
// errored or empty so the caller falls back to the database.
func cachedRanking(c *fiber.Ctx) []leaderboard.Entry {
	if !leaderboard.Ranking.Enabled() {
		return nil
	}
	entries, err := leaderboard.Ranking.Top(c.Context())
	if err != nil {
		log.Printf("Error reading ranking cache: %v", err)
		return nil
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}

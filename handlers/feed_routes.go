// handlers/feed_routes.go
package handlers

import (
	"learn-publish-system/models"
	"learn-publish-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupFeedRoutes(app *fiber.App, feedService *services.FeedService) {
	// 🔓 Feed reads are public — Gateway auth only.
	app.Get("/feed", func(c *fiber.Ctx) error {
		return c.JSON(feedService.GetFeed())
	})

	app.Get("/feed/search", func(c *fiber.Ctx) error {
		filters := models.FeedFilters{
			Kind:     models.FeedKind(c.Query("type")),
			Language: c.Query("language"),
			Topic:    c.Query("topic"),
		}
		return c.JSON(feedService.Search(c.Query("q"), filters))
	})
}

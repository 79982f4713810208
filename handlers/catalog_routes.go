// handlers/catalog_routes.go
package handlers

import (
	"learn-publish-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupCatalogRoutes(app *fiber.App, catalogService *services.CatalogService) {
	app.Get("/catalog", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"topics": catalogService.Topics()})
	})

	app.Get("/catalog/:topic", func(c *fiber.Ctx) error {
		lesson, served, ok := catalogService.Lookup(c.Params("topic"), c.Query("lang", "en"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown topic"})
		}
		return c.JSON(fiber.Map{
			"language": served,
			"lesson":   lesson,
		})
	})
}

// handlers/reward_routes.go
package handlers

import (
	"learn-publish-system/middleware"
	"learn-publish-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRewardRoutes(app *fiber.App, rewardService *services.RewardService) {
	// 🔐 Scoped to /credentials so the middleware never touches routes
	// outside it.
	secured := app.Group("/credentials", middleware.WalletContextMiddleware())

	secured.Post("/mint", func(c *fiber.Ctx) error {
		wallet := c.Locals("wallet_address").(string)

		var req services.CredentialRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.Skill == "" || req.Amount <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "skill and a positive amount are required"})
		}

		result := rewardService.MintSkillCredential(c.Context(), wallet, req)
		if !result.Success {
			// Mint failures are surfaced as-is; the UI may re-invoke.
			return c.Status(fiber.StatusBadGateway).JSON(result)
		}
		return c.JSON(result)
	})

	secured.Get("/", func(c *fiber.Ctx) error {
		wallet := c.Locals("wallet_address").(string)

		credentials, err := rewardService.GetCredentials(wallet)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "profile not found"})
		}
		return c.JSON(credentials)
	})
}

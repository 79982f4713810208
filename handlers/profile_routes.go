// handlers/profile_routes.go
package handlers

import (
	"log"
	"path/filepath"

	"learn-publish-system/middleware"
	"learn-publish-system/services"
	"learn-publish-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SetupProfileRoutes(app *fiber.App, profileService *services.ProfileService) {
	// 🔐 Secured routes — wallet context required. The group is scoped to
	// /profile so the middleware never touches routes outside it.
	secured := app.Group("/profile", middleware.WalletContextMiddleware())

	secured.Get("/", func(c *fiber.Ctx) error {
		wallet := c.Locals("wallet_address").(string)
		return c.JSON(profileService.GetOrCreate(wallet))
	})

	secured.Patch("/", func(c *fiber.Ctx) error {
		wallet := c.Locals("wallet_address").(string)

		var patch services.ProfileUpdate
		if err := c.BodyParser(&patch); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		p := profileService.Update(wallet, patch)
		if p == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "profile not found"})
		}
		return c.JSON(p)
	})

	secured.Post("/avatar", func(c *fiber.Ctx) error {
		wallet := c.Locals("wallet_address").(string)

		avatarFile, err := c.FormFile("avatar")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar file is required"})
		}
		if avatarFile.Size > 5*1024*1024 { // 5MB
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file too large (max 5MB)"})
		}

		ext := filepath.Ext(avatarFile.Filename)
		if ext == "" {
			ext = ".png"
		}
		filename := "avatars/" + uuid.NewString() + ext

		var avatarURL string
		if utils.R2Enabled() {
			avatarURL, err = utils.UploadMediaToR2(avatarFile, filename)
		} else {
			avatarURL, err = utils.SaveFileLocally(avatarFile, filename)
		}
		if err != nil {
			log.Printf("❌ [PROFILE] Avatar upload failed for %s: %v", wallet, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store avatar"})
		}

		p := profileService.Update(wallet, services.ProfileUpdate{AvatarURL: &avatarURL})
		if p == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "profile not found"})
		}
		return c.JSON(p)
	})

	secured.Post("/xp", func(c *fiber.Ctx) error {
		wallet := c.Locals("wallet_address").(string)

		var req struct {
			Amount int64 `json:"amount"`
		}
		if err := c.BodyParser(&req); err != nil || req.Amount <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must be a positive integer"})
		}

		p := profileService.AddXP(wallet, req.Amount)
		if p == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "profile not found"})
		}
		return c.JSON(p)
	})

	secured.Post("/quiz-completions", func(c *fiber.Ctx) error {
		wallet := c.Locals("wallet_address").(string)

		var req struct {
			QuizID   string `json:"quiz_id"`
			Score    int    `json:"score"`
			XPEarned int64  `json:"xp_earned"`
			Topic    string `json:"topic"`
			Language string `json:"language"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		p := profileService.RecordQuizCompletion(wallet, req.QuizID, req.Score, req.XPEarned, req.Topic, req.Language)
		if p == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "profile not found"})
		}
		return c.JSON(p)
	})

	secured.Post("/lesson-completions", func(c *fiber.Ctx) error {
		wallet := c.Locals("wallet_address").(string)

		var req struct {
			LessonID string `json:"lesson_id"`
			XPEarned int64  `json:"xp_earned"`
			Topic    string `json:"topic"`
			Language string `json:"language"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		p := profileService.RecordLessonCompletion(wallet, req.LessonID, req.XPEarned, req.Topic, req.Language)
		if p == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "profile not found"})
		}
		return c.JSON(p)
	})

	secured.Post("/streak", func(c *fiber.Ctx) error {
		wallet := c.Locals("wallet_address").(string)

		p := profileService.UpdateStreak(wallet)
		if p == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "profile not found"})
		}
		return c.JSON(fiber.Map{
			"current_streak": p.Stats.CurrentStreak,
			"longest_streak": p.Stats.LongestStreak,
		})
	})

	secured.Delete("/", func(c *fiber.Ctx) error {
		wallet := c.Locals("wallet_address").(string)
		profileService.Clear(wallet)
		return c.JSON(fiber.Map{"message": "profile cleared", "wallet_address": wallet})
	})

	// Admin endpoints
	admin := app.Group("/s/admin", middleware.WalletContextMiddleware())

	admin.Get("/profiles", func(c *fiber.Ctx) error {
		return c.JSON(profileService.GetAll())
	})
}

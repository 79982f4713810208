// handlers/content_routes.go
package handlers

import (
	"log"
	"path/filepath"

	"learn-publish-system/middleware"
	"learn-publish-system/models"
	"learn-publish-system/services"
	"learn-publish-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SetupContentRoutes(app *fiber.App, contentService *services.ContentService) {
	// 🔓 Public reads — Gateway auth only, no wallet context needed.
	app.Get("/lessons", func(c *fiber.Ctx) error {
		topic := c.Query("topic")
		lang := c.Query("language")

		var lessons []models.Lesson
		switch {
		case topic != "" && lang != "":
			lessons = contentService.GetByTopicAndLanguage(topic, lang)
		case topic != "":
			lessons = contentService.GetByTopic(topic)
		case lang != "":
			lessons = contentService.GetByLanguage(lang)
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "provide a topic and/or language filter",
			})
		}
		return c.JSON(lessons)
	})

	app.Get("/lessons/:id", func(c *fiber.Ctx) error {
		lesson := contentService.GetLesson(c.Params("id"))
		if lesson == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "lesson not found"})
		}
		return c.JSON(lesson)
	})

	app.Get("/quizzes/:id", func(c *fiber.Ctx) error {
		quiz := contentService.GetQuiz(c.Params("id"))
		if quiz == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "quiz not found"})
		}
		return c.JSON(quiz)
	})

	// 🔐 Secured routes — wallet context per route. The write routes share
	// prefixes with the public reads above, so the middleware is attached
	// per route rather than as a catch-all group.
	wallet := middleware.WalletContextMiddleware()

	app.Post("/lessons", wallet, func(c *fiber.Ctx) error {
		walletAddr := c.Locals("wallet_address").(string)

		var in services.LessonInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if in.Title == "" || in.Content == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title and content are required"})
		}
		in.CreatorWallet = walletAddr

		lesson := contentService.CreateLesson(in)
		return c.Status(fiber.StatusCreated).JSON(lesson)
	})

	app.Post("/lessons/:id/quiz", wallet, func(c *fiber.Ctx) error {
		var in services.QuizInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if in.Title == "" || len(in.Questions) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title and questions are required"})
		}

		quiz := contentService.CreateQuizFromLesson(c.Params("id"), in)
		if quiz == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "lesson not found"})
		}
		return c.Status(fiber.StatusCreated).JSON(quiz)
	})

	app.Post("/lessons/:id/cover", wallet, func(c *fiber.Ctx) error {
		lessonID := c.Params("id")
		if contentService.GetLesson(lessonID) == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "lesson not found"})
		}

		coverFile, err := c.FormFile("cover")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cover file is required"})
		}
		if coverFile.Size > 5*1024*1024 { // 5MB
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file too large (max 5MB)"})
		}

		ext := filepath.Ext(coverFile.Filename)
		if ext == "" {
			ext = ".png"
		}
		filename := "covers/" + uuid.NewString() + ext

		var coverURL string
		if utils.R2Enabled() {
			coverURL, err = utils.UploadMediaToR2(coverFile, filename)
		} else {
			coverURL, err = utils.SaveFileLocally(coverFile, filename)
		}
		if err != nil {
			log.Printf("❌ [CONTENT] Cover upload failed for %s: %v", lessonID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store cover"})
		}

		lesson := contentService.SetLessonCover(lessonID, coverURL)
		if lesson == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "lesson not found"})
		}
		return c.JSON(lesson)
	})

	app.Post("/quizzes/:id/attempts", wallet, func(c *fiber.Ctx) error {
		walletAddr := c.Locals("wallet_address").(string)

		var req struct {
			Score     int `json:"score"`
			TimeTaken int `json:"time_taken"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		attempt := contentService.RecordQuizAttempt(c.Params("id"), walletAddr, req.Score, req.TimeTaken)
		if attempt == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "quiz not found"})
		}
		return c.Status(fiber.StatusCreated).JSON(attempt)
	})

	app.Get("/quizzes/:id/attempts", wallet, func(c *fiber.Ctx) error {
		return c.JSON(contentService.GetAttempts(c.Params("id")))
	})

	app.Get("/content/personal", wallet, func(c *fiber.Ctx) error {
		walletAddr := c.Locals("wallet_address").(string)
		return c.JSON(contentService.GetPersonal(walletAddr))
	})

	app.Get("/content/community", wallet, func(c *fiber.Ctx) error {
		walletAddr := c.Locals("wallet_address").(string)
		return c.JSON(contentService.GetCommunity(walletAddr))
	})

	app.Post("/lessons/:id/views", wallet, func(c *fiber.Ctx) error {
		lesson := contentService.RecordLessonView(c.Params("id"))
		if lesson == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "lesson not found"})
		}
		return c.JSON(fiber.Map{"id": lesson.ID, "views": lesson.Views})
	})

	app.Post("/lessons/:id/likes", wallet, func(c *fiber.Ctx) error {
		lesson := contentService.LikeLesson(c.Params("id"))
		if lesson == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "lesson not found"})
		}
		return c.JSON(fiber.Map{"id": lesson.ID, "likes": lesson.Likes})
	})
}

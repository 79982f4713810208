package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"learn-publish-system/models"
	"learn-publish-system/services"
	"learn-publish-system/storage"

	"github.com/gofiber/fiber/v2"
)

// newTestApp wires every route file against an in-memory store. The
// wallet-gated files register first on purpose: their middleware is scoped
// to its own prefixes, so registration order must not affect the public
// reads.
func newTestApp() (*fiber.App, *services.ContentService) {
	store := storage.NewMemoryStore()
	achievements := services.NewAchievementService(store)
	profiles := services.NewProfileService(store, achievements)
	feed := services.NewFeedService(store)
	content := services.NewContentService(store, feed)
	rewards := services.NewRewardService(store, achievements, nil)

	app := fiber.New()
	SetupProfileRoutes(app, profiles)
	SetupRewardRoutes(app, rewards)
	SetupContentRoutes(app, content)
	SetupFeedRoutes(app, feed)
	SetupCatalogRoutes(app, services.NewCatalogService())
	return app, content
}

func doRequest(t *testing.T, app *fiber.App, method, target, walletHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if walletHeader != "" {
		req.Header.Set("X-Wallet-Address", walletHeader)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func TestPublicRoutesNeedNoWalletHeader(t *testing.T) {
	app, _ := newTestApp()

	public := []struct {
		method string
		target string
		want   int
	}{
		{"GET", "/feed", http.StatusOK},
		{"GET", "/feed/search?q=wallet", http.StatusOK},
		{"GET", "/catalog", http.StatusOK},
		{"GET", "/catalog/culture", http.StatusOK},
		{"GET", "/catalog/culture?lang=fr", http.StatusOK},
		{"GET", "/lessons?topic=crypto-basics", http.StatusOK},
		{"GET", "/lessons/lesson_1_aaaaaaaaa", http.StatusNotFound},
		{"GET", "/quizzes/quiz_1_aaaaaaaaa", http.StatusNotFound},
	}
	for _, tc := range public {
		resp := doRequest(t, app, tc.method, tc.target, "")
		if resp.StatusCode != tc.want {
			t.Fatalf("%s %s without wallet header: status=%d, want %d",
				tc.method, tc.target, resp.StatusCode, tc.want)
		}
	}
}

func TestSecuredRoutesRejectMissingWalletHeader(t *testing.T) {
	app, _ := newTestApp()

	secured := []struct {
		method string
		target string
	}{
		{"GET", "/profile"},
		{"POST", "/profile/xp"},
		{"POST", "/lessons"},
		{"GET", "/content/personal"},
		{"POST", "/credentials/mint"},
		{"GET", "/credentials"},
		{"GET", "/s/admin/profiles"},
	}
	for _, tc := range secured {
		resp := doRequest(t, app, tc.method, tc.target, "")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s %s without wallet header: status=%d, want 401",
				tc.method, tc.target, resp.StatusCode)
		}
	}

	resp := doRequest(t, app, "GET", "/profile", "0xABC")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /profile with wallet header: status=%d, want 200", resp.StatusCode)
	}

	var p models.Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if p.WalletAddress != "0xabc" {
		t.Fatalf("wallet not lowercased: %s", p.WalletAddress)
	}
}

func TestLessonCoverUploadLocalFallback(t *testing.T) {
	t.Chdir(t.TempDir())

	app, content := newTestApp()

	lesson := content.CreateLesson(services.LessonInput{
		Title:         "Coverable",
		Content:       "body",
		CreatorWallet: "0xabc",
		IsPublic:      true,
	})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("cover", "cover.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("fake png bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/lessons/"+lesson.ID+"/cover", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Wallet-Address", "0xabc")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("cover upload: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cover upload: status=%d, want 200", resp.StatusCode)
	}

	var updated models.Lesson
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("decode lesson: %v", err)
	}
	if !strings.HasPrefix(updated.CoverImageURL, "/uploads/media/covers/") {
		t.Fatalf("coverImageURL=%q, want local uploads path", updated.CoverImageURL)
	}

	// The fallback actually wrote the file to disk.
	if _, err := os.Stat(strings.TrimPrefix(updated.CoverImageURL, "/")); err != nil {
		t.Fatalf("stored cover missing on disk: %v", err)
	}

	// The stored record carries the new URL.
	if got := content.GetLesson(lesson.ID); got.CoverImageURL != updated.CoverImageURL {
		t.Fatalf("stored coverImageURL=%q, want %q", got.CoverImageURL, updated.CoverImageURL)
	}
}

func TestLessonCoverUploadMissingLesson(t *testing.T) {
	app, _ := newTestApp()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("cover", "cover.png")
	_, _ = part.Write([]byte("x"))
	mw.Close()

	req := httptest.NewRequest("POST", "/lessons/lesson_1_zzzzzzzzz/cover", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Wallet-Address", "0xabc")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("cover upload: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d, want 404 for unknown lesson", resp.StatusCode)
	}
}

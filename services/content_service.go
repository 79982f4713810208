package services

import (
	"log"
	"strings"
	"time"

	"learn-publish-system/models"
	"learn-publish-system/storage"
	"learn-publish-system/utils"

	"github.com/gosimple/slug"
)

const (
	lessonKeyPrefix  = "lesson_"
	quizKeyPrefix    = "quiz_"
	authorKeyPrefix  = "author_lessons_"
	attemptKeyPrefix = "attempts_"
)

// ContentService is the lesson/quiz directory. Content records are stored
// under their generated ids; author and attempt indices live under separate
// namespaces. Writes that touch the feed are not atomic with the record
// write — last write wins, no rollback.
type ContentService struct {
	Store storage.Store
	Feed  *FeedService
}

func NewContentService(store storage.Store, feed *FeedService) *ContentService {
	return &ContentService{Store: store, Feed: feed}
}

// LessonInput carries the author-supplied fields for a new lesson.
type LessonInput struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Description   string `json:"description"`
	Language      string `json:"language"`
	Topic         string `json:"topic"`
	Difficulty    string `json:"difficulty"`
	Duration      string `json:"duration"`
	CoverImageURL string `json:"cover_image_url"`
	CreatorWallet string `json:"creator_wallet"`
	CreatorName   string `json:"creator_name"`
	IsPublic      bool   `json:"is_public"`
}

// QuizInput carries the author-supplied fields for a quiz derived from a
// lesson. Language, topic and creator come from the parent.
type QuizInput struct {
	Title        string                `json:"title"`
	Questions    []models.QuizQuestion `json:"questions"`
	PassingScore int                   `json:"passing_score"`
}

// CreateLesson persists a new published lesson, fills defaults, indexes it
// under its author, and — when public — projects it onto the community feed.
func (s *ContentService) CreateLesson(in LessonInput) *models.Lesson {
	now := time.Now()

	description := in.Description
	if description == "" {
		description = utils.Truncate(in.Content, models.DescriptionMaxLength)
	}
	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = models.DefaultDifficulty
	}
	duration := in.Duration
	if duration == "" {
		duration = models.DefaultDuration
	}
	lessonType := models.LessonTypePersonal
	if in.IsPublic {
		lessonType = models.LessonTypeCommunity
	}

	lesson := &models.Lesson{
		ID:            utils.GenerateID("lesson"),
		Title:         in.Title,
		Content:       in.Content,
		Description:   description,
		Language:      in.Language,
		Topic:         in.Topic,
		Difficulty:    difficulty,
		Duration:      duration,
		CoverImageURL: in.CoverImageURL,
		CreatorWallet: strings.ToLower(in.CreatorWallet),
		CreatorName:   in.CreatorName,
		IsPublic:      in.IsPublic,
		LessonType:    lessonType,
		Published:     true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.Store.Set(lesson.ID, lesson)
	s.appendAuthorIndex(lesson.CreatorWallet, lesson.ID)

	if lesson.IsPublic {
		s.Feed.Append(models.FeedEntryFromLesson(lesson))
	}

	log.Printf("📚 [CONTENT] Lesson published: %s (%s)", lesson.Title, lesson.ID)
	return lesson
}

// CreateQuizFromLesson derives a quiz from an existing lesson. Returns nil
// when the lesson id does not resolve.
//
// TODO: quizzes are appended to the feed even when the parent lesson is
// personal, while lessons honor their visibility flag — raise with product
// before making these symmetric.
func (s *ContentService) CreateQuizFromLesson(lessonID string, in QuizInput) *models.Quiz {
	lesson := s.GetLesson(lessonID)
	if lesson == nil {
		return nil
	}

	now := time.Now()
	passingScore := in.PassingScore
	if passingScore <= 0 {
		passingScore = models.DefaultPassingScore
	}

	quiz := &models.Quiz{
		ID:            utils.GenerateID("quiz"),
		Title:         in.Title,
		Questions:     in.Questions,
		Language:      lesson.Language,
		Topic:         lesson.Topic,
		CreatorWallet: lesson.CreatorWallet,
		CreatorName:   lesson.CreatorName,
		LessonID:      lesson.ID,
		PassingScore:  passingScore,
		IsPublic:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	quiz.ShareLink = "/q/" + slug.Make(in.Title) + "-" + quiz.ID[len(quiz.ID)-6:]

	s.Store.Set(quiz.ID, quiz)
	s.Feed.Append(models.FeedEntryFromQuiz(quiz))

	lesson.LinkedQuizID = &quiz.ID
	lesson.UpdatedAt = now
	s.Store.Set(lesson.ID, lesson)

	log.Printf("📝 [CONTENT] Quiz published: %s (%s) from lesson %s", quiz.Title, quiz.ID, lesson.ID)
	return quiz
}

// RecordQuizAttempt scores one attempt: bumps the attempt count, folds the
// score into the running average, mirrors both onto the feed entry, and
// appends the attempt to the per-quiz history. Returns nil if the quiz does
// not exist.
func (s *ContentService) RecordQuizAttempt(quizID, walletAddress string, score, timeTaken int) *models.QuizAttempt {
	quiz := s.GetQuiz(quizID)
	if quiz == nil {
		return nil
	}

	quiz.Attempts++
	n := float64(quiz.Attempts)
	quiz.AverageScore = (quiz.AverageScore*(n-1) + float64(score)) / n
	quiz.UpdatedAt = time.Now()
	s.Store.Set(quiz.ID, quiz)

	s.Feed.UpdateEntry(quiz.ID, models.FeedEntryUpdate{
		Attempts:     &quiz.Attempts,
		AverageScore: &quiz.AverageScore,
	})

	attempt := models.QuizAttempt{
		ID:            utils.GenerateID("attempt"),
		QuizID:        quiz.ID,
		WalletAddress: strings.ToLower(walletAddress),
		Score:         score,
		Passed:        score >= quiz.PassingScore,
		TimeTaken:     timeTaken,
		CreatedAt:     time.Now(),
	}

	var history []models.QuizAttempt
	s.Store.Get(attemptKeyPrefix+quiz.ID, &history)
	history = append(history, attempt)
	s.Store.Set(attemptKeyPrefix+quiz.ID, history)

	return &attempt
}

// GetLesson returns the lesson or nil.
func (s *ContentService) GetLesson(id string) *models.Lesson {
	if !strings.HasPrefix(id, lessonKeyPrefix) {
		return nil
	}
	var lesson models.Lesson
	if !s.Store.Get(id, &lesson) {
		return nil
	}
	return &lesson
}

// GetQuiz returns the quiz or nil.
func (s *ContentService) GetQuiz(id string) *models.Quiz {
	if !strings.HasPrefix(id, quizKeyPrefix) {
		return nil
	}
	var quiz models.Quiz
	if !s.Store.Get(id, &quiz) {
		return nil
	}
	return &quiz
}

// GetAttempts returns the recorded attempt history for a quiz.
func (s *ContentService) GetAttempts(quizID string) []models.QuizAttempt {
	var history []models.QuizAttempt
	s.Store.Get(attemptKeyPrefix+quizID, &history)
	return history
}

// GetByTopic filters all lessons by topic. Linear scan — fine at the scale
// this directory is built for.
func (s *ContentService) GetByTopic(topic string) []models.Lesson {
	return s.filterLessons(func(l *models.Lesson) bool {
		return l.Topic == topic
	})
}

// GetByLanguage filters all lessons by source language.
func (s *ContentService) GetByLanguage(language string) []models.Lesson {
	return s.filterLessons(func(l *models.Lesson) bool {
		return l.Language == language
	})
}

// GetByTopicAndLanguage combines both equality filters.
func (s *ContentService) GetByTopicAndLanguage(topic, language string) []models.Lesson {
	return s.filterLessons(func(l *models.Lesson) bool {
		return l.Topic == topic && l.Language == language
	})
}

// GetPersonal returns the wallet's own personal lessons.
func (s *ContentService) GetPersonal(walletAddress string) []models.Lesson {
	addr := strings.ToLower(walletAddress)
	return s.filterLessons(func(l *models.Lesson) bool {
		return l.CreatorWallet == addr && l.LessonType == models.LessonTypePersonal
	})
}

// GetCommunity returns the wallet's lessons shared with the community.
func (s *ContentService) GetCommunity(walletAddress string) []models.Lesson {
	addr := strings.ToLower(walletAddress)
	return s.filterLessons(func(l *models.Lesson) bool {
		return l.CreatorWallet == addr && l.LessonType == models.LessonTypeCommunity
	})
}

// GetAuthorLessonIDs returns the author index for a wallet.
func (s *ContentService) GetAuthorLessonIDs(walletAddress string) []string {
	var ids []string
	s.Store.Get(authorKeyPrefix+strings.ToLower(walletAddress), &ids)
	return ids
}

// SetLessonCover stores the uploaded cover URL on the lesson. Returns nil
// if the lesson does not exist.
func (s *ContentService) SetLessonCover(id, url string) *models.Lesson {
	lesson := s.GetLesson(id)
	if lesson == nil {
		return nil
	}
	lesson.CoverImageURL = url
	lesson.UpdatedAt = time.Now()
	s.Store.Set(lesson.ID, lesson)
	return lesson
}

// RecordLessonView bumps the view counter and mirrors it to the feed.
func (s *ContentService) RecordLessonView(id string) *models.Lesson {
	lesson := s.GetLesson(id)
	if lesson == nil {
		return nil
	}
	lesson.Views++
	lesson.UpdatedAt = time.Now()
	s.Store.Set(lesson.ID, lesson)
	if lesson.IsPublic {
		s.Feed.UpdateEntry(lesson.ID, models.FeedEntryUpdate{Views: &lesson.Views})
	}
	return lesson
}

// LikeLesson bumps the like counter and mirrors it to the feed.
func (s *ContentService) LikeLesson(id string) *models.Lesson {
	lesson := s.GetLesson(id)
	if lesson == nil {
		return nil
	}
	lesson.Likes++
	lesson.UpdatedAt = time.Now()
	s.Store.Set(lesson.ID, lesson)
	if lesson.IsPublic {
		s.Feed.UpdateEntry(lesson.ID, models.FeedEntryUpdate{Likes: &lesson.Likes})
	}
	return lesson
}

// --- internals ---

func (s *ContentService) filterLessons(keep func(*models.Lesson) bool) []models.Lesson {
	keys := s.Store.Keys(lessonKeyPrefix)
	var lessons []models.Lesson
	for _, key := range keys {
		var l models.Lesson
		if s.Store.Get(key, &l) && keep(&l) {
			lessons = append(lessons, l)
		}
	}
	return lessons
}

func (s *ContentService) appendAuthorIndex(walletAddress, lessonID string) {
	key := authorKeyPrefix + walletAddress
	var ids []string
	s.Store.Get(key, &ids)
	ids = append(ids, lessonID)
	s.Store.Set(key, ids)
}

package models

import (
	"fmt"
	"time"
)

// MaxFeedEntries caps the community feed; the oldest entries are trimmed
// from the tail once the cap is exceeded.
const MaxFeedEntries = 100

// FeedKind tags the origin of a feed entry.
type FeedKind string

const (
	FeedKindLesson FeedKind = "lesson"
	FeedKindQuiz   FeedKind = "quiz"
)

// FeedEntry is a denormalized projection of a content record, kept newest
// first. It is a cache for feed rendering — the content directory stays the
// source of truth, so losing entries here is acceptable.
type FeedEntry struct {
	ID            string   `json:"id"`
	Kind          FeedKind `json:"kind"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	CreatorWallet string   `json:"creator_wallet"`
	CreatorName   string   `json:"creator_name"`
	Language      string   `json:"language"`
	Topic         string   `json:"topic"`
	IsPublic      bool     `json:"is_public"`

	// Counters mirrored from the source record.
	Views        int64   `json:"views"`
	Likes        int64   `json:"likes"`
	Attempts     int64   `json:"attempts"`
	AverageScore float64 `json:"average_score"`

	CreatedAt time.Time `json:"created_at"`
}

// FeedEntryUpdate patches counters on a single feed entry. Nil fields are
// left untouched.
type FeedEntryUpdate struct {
	Views        *int64   `json:"views,omitempty"`
	Likes        *int64   `json:"likes,omitempty"`
	Attempts     *int64   `json:"attempts,omitempty"`
	AverageScore *float64 `json:"average_score,omitempty"`
}

// FeedFilters narrows a feed search. Empty fields match everything.
type FeedFilters struct {
	Kind     FeedKind `json:"kind,omitempty"`
	Language string   `json:"language,omitempty"`
	Topic    string   `json:"topic,omitempty"`
}

// FeedEntryFromLesson projects a lesson into its feed shape.
func FeedEntryFromLesson(l *Lesson) FeedEntry {
	return FeedEntry{
		ID:            l.ID,
		Kind:          FeedKindLesson,
		Title:         l.Title,
		Description:   l.Description,
		CreatorWallet: l.CreatorWallet,
		CreatorName:   l.CreatorName,
		Language:      l.Language,
		Topic:         l.Topic,
		IsPublic:      l.IsPublic,
		Views:         l.Views,
		Likes:         l.Likes,
		CreatedAt:     l.CreatedAt,
	}
}

// FeedEntryFromQuiz projects a quiz into its feed shape.
func FeedEntryFromQuiz(q *Quiz) FeedEntry {
	return FeedEntry{
		ID:            q.ID,
		Kind:          FeedKindQuiz,
		Title:         q.Title,
		Description:   fmt.Sprintf("%d questions · passing score %d%%", len(q.Questions), q.PassingScore),
		CreatorWallet: q.CreatorWallet,
		CreatorName:   q.CreatorName,
		Language:      q.Language,
		Topic:         q.Topic,
		IsPublic:      q.IsPublic,
		Attempts:      q.Attempts,
		AverageScore:  q.AverageScore,
		CreatedAt:     q.CreatedAt,
	}
}

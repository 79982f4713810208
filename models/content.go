package models

import "time"

// LessonType classifies content visibility. It must agree with IsPublic:
// personal content never reaches the community feed.
type LessonType string

const (
	LessonTypePersonal  LessonType = "personal"
	LessonTypeCommunity LessonType = "community"
)

// Content defaults applied when the author leaves fields blank.
const (
	DefaultDifficulty    = "Beginner"
	DefaultDuration      = "10 minutes"
	DefaultPassingScore  = 70
	DescriptionMaxLength = 150
)

// Lesson is an authored content record. Created once on publish, updated in
// place for engagement counters and the linked quiz back-reference; there is
// no delete path.
type Lesson struct {
	ID            string     `json:"id"` // lesson_<ms>_<suffix>
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Description   string     `json:"description"`
	Language      string     `json:"language"`
	Topic         string     `json:"topic"`
	Difficulty    string     `json:"difficulty"`
	Duration      string     `json:"duration"`
	CoverImageURL string     `json:"cover_image_url,omitempty"`
	CreatorWallet string     `json:"creator_wallet"`
	CreatorName   string     `json:"creator_name"`
	IsPublic      bool       `json:"is_public"`
	LessonType    LessonType `json:"lesson_type"`
	Published     bool       `json:"published"`
	LinkedQuizID  *string    `json:"linked_quiz_id,omitempty"`

	// Engagement counters, mirrored onto the feed entry when public.
	Views       int64 `json:"views"`
	Likes       int64 `json:"likes"`
	Shares      int64 `json:"shares"`
	Completions int64 `json:"completions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Quiz is a question set derived from a lesson. Language, topic and creator
// are inherited from the parent lesson at creation time.
type Quiz struct {
	ID            string         `json:"id"` // quiz_<ms>_<suffix>
	Title         string         `json:"title"`
	Questions     []QuizQuestion `json:"questions"`
	Language      string         `json:"language"`
	Topic         string         `json:"topic"`
	CreatorWallet string         `json:"creator_wallet"`
	CreatorName   string         `json:"creator_name"`
	LessonID      string         `json:"lesson_id"`
	ShareLink     string         `json:"share_link"`
	PassingScore  int            `json:"passing_score"`
	IsPublic      bool           `json:"is_public"`

	// Attempts and the running weighted mean over all recorded scores.
	Attempts     int64   `json:"attempts"`
	AverageScore float64 `json:"average_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuizQuestion is one multiple-choice question.
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation,omitempty"`
}

// QuizAttempt records one scored attempt at a quiz.
type QuizAttempt struct {
	ID            string    `json:"id"` // attempt_<ms>_<suffix>
	QuizID        string    `json:"quiz_id"`
	WalletAddress string    `json:"wallet_address"`
	Score         int       `json:"score"`
	Passed        bool      `json:"passed"`
	TimeTaken     int       `json:"time_taken"` // seconds
	CreatedAt     time.Time `json:"created_at"`
}

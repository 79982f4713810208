package models

import (
	"time"
)

const (
	// XPPerLevel is the flat XP cost of each level. Level is always
	// recomputed as max(1, totalXP/100 + 1) after an XP mutation.
	XPPerLevel = 100

	// MaxRecentActivity caps the per-profile activity log; oldest entries
	// are dropped beyond this.
	MaxRecentActivity = 50
)

// Profile is the per-wallet user record. One profile per lowercased wallet
// address; created lazily with zero stats on first lookup.
type Profile struct {
	WalletAddress string  `json:"wallet_address"`
	DisplayName   string  `json:"display_name"`
	AvatarURL     string  `json:"avatar_url"`
	Bio           string  `json:"bio"`
	Website       *string `json:"website,omitempty"`
	Twitter       *string `json:"twitter,omitempty"`
	Telegram      *string `json:"telegram,omitempty"`

	Stats            ProfileStats         `json:"stats"`
	LearningProgress []LanguageProgress   `json:"learning_progress"`
	TopicProgress    []TopicProgress      `json:"topic_progress"`
	RecentActivity   []Activity           `json:"recent_activity"`
	CompletedLessons []CompletedLesson    `json:"completed_lessons"`
	CompletedQuizzes []CompletedQuiz      `json:"completed_quizzes"`
	SkillCredentials []SkillCredential    `json:"skill_credentials"`
	Achievements     []AwardedAchievement `json:"achievements"`

	// LastActivityDate is a host-local calendar day ("2006-01-02") used by
	// the streak update; empty until the first credited activity.
	LastActivityDate string `json:"last_activity_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileStats is the denormalized aggregate shown on the profile page.
type ProfileStats struct {
	TotalXP          int64   `json:"total_xp"`
	CurrentLevel     int     `json:"current_level"`
	CurrentStreak    int     `json:"current_streak"`
	LongestStreak    int     `json:"longest_streak"`
	QuizzesCompleted int     `json:"quizzes_completed"`
	LessonsCompleted int     `json:"lessons_completed"`
	AverageAccuracy  float64 `json:"average_accuracy"`
}

// LanguageProgress tracks per-language XP and completion counters.
type LanguageProgress struct {
	Language         string `json:"language"`
	XP               int64  `json:"xp"`
	LessonsCompleted int    `json:"lessons_completed"`
	QuizzesCompleted int    `json:"quizzes_completed"`
}

// TopicProgress is the same shape keyed by topic.
type TopicProgress struct {
	Topic            string `json:"topic"`
	XP               int64  `json:"xp"`
	LessonsCompleted int    `json:"lessons_completed"`
	QuizzesCompleted int    `json:"quizzes_completed"`
}

// ActivityType tags entries in the recent-activity log.
type ActivityType string

const (
	ActivityXPGained        ActivityType = "xp_gained"
	ActivityQuizCompleted   ActivityType = "quiz_completed"
	ActivityLessonCompleted ActivityType = "lesson_completed"
	ActivityCredentialMint  ActivityType = "credential_minted"
)

// Activity is one entry of the bounded recent-activity log (newest first).
type Activity struct {
	ID          string       `json:"id"` // activity_<ms>_<suffix>
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	XP          int64        `json:"xp,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// CompletedQuiz is one line of the per-profile quiz history.
type CompletedQuiz struct {
	QuizID      string    `json:"quiz_id"`
	Score       int       `json:"score"`
	XPEarned    int64     `json:"xp_earned"`
	Topic       string    `json:"topic"`
	Language    string    `json:"language"`
	CompletedAt time.Time `json:"completed_at"`
}

// CompletedLesson is one line of the per-profile lesson history.
type CompletedLesson struct {
	LessonID    string    `json:"lesson_id"`
	XPEarned    int64     `json:"xp_earned"`
	Topic       string    `json:"topic"`
	Language    string    `json:"language"`
	CompletedAt time.Time `json:"completed_at"`
}

// SkillCredential is a claimed completed skill, optionally cross-referenced
// to an on-chain mint transaction. TxRef is opaque — stored for display only.
type SkillCredential struct {
	ID       string    `json:"id"`
	Skill    string    `json:"skill"`
	Level    int       `json:"level"`
	Topic    string    `json:"topic"`
	Language string    `json:"language"`
	MintedAt time.Time `json:"minted_at"`
	TxRef    *string   `json:"tx_ref,omitempty"`
}

// AwardedAchievement is an achievement instance on a profile.
type AwardedAchievement struct {
	Code      string    `json:"code"`
	AwardedAt time.Time `json:"awarded_at"`
}

// LevelForXP applies the flat level curve.
func LevelForXP(totalXP int64) int {
	level := int(totalXP/XPPerLevel) + 1
	if level < 1 {
		level = 1
	}
	return level
}

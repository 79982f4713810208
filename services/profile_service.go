package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"learn-publish-system/models"
	"learn-publish-system/storage"
	"learn-publish-system/utils"
)

// ProfileService is the per-wallet profile directory. Every operation is a
// read-modify-write against the record store; missing profiles yield nil
// rather than errors (callers check for nil).
type ProfileService struct {
	Store        storage.Store
	Achievements *AchievementService
}

func NewProfileService(store storage.Store, achievements *AchievementService) *ProfileService {
	return &ProfileService{Store: store, Achievements: achievements}
}

const profileKeyPrefix = "wallet_profile_"

func profileKey(walletAddress string) string {
	return profileKeyPrefix + strings.ToLower(walletAddress)
}

// ProfileUpdate patches mutable profile fields. Nil fields are left as-is.
type ProfileUpdate struct {
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
	Bio         *string `json:"bio"`
	Website     *string `json:"website"`
	Twitter     *string `json:"twitter"`
	Telegram    *string `json:"telegram"`
}

// GetOrCreate returns the stored profile for the wallet, creating a
// zero-state default on first lookup (idempotent).
func (s *ProfileService) GetOrCreate(walletAddress string) *models.Profile {
	addr := strings.ToLower(walletAddress)

	var p models.Profile
	if s.Store.Get(profileKey(addr), &p) {
		return &p
	}

	now := time.Now()
	p = models.Profile{
		WalletAddress: addr,
		DisplayName:   shortAddress(addr),
		Stats: models.ProfileStats{
			TotalXP:      0,
			CurrentLevel: 1,
		},
		LearningProgress: []models.LanguageProgress{},
		TopicProgress:    []models.TopicProgress{},
		RecentActivity:   []models.Activity{},
		CompletedLessons: []models.CompletedLesson{},
		CompletedQuizzes: []models.CompletedQuiz{},
		SkillCredentials: []models.SkillCredential{},
		Achievements:     []models.AwardedAchievement{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.Store.Set(profileKey(addr), &p)
	log.Printf("👤 [PROFILE] Created default profile for %s", addr)
	return &p
}

// Get returns the stored profile or nil. Unlike GetOrCreate it never writes.
func (s *ProfileService) Get(walletAddress string) *models.Profile {
	var p models.Profile
	if !s.Store.Get(profileKey(walletAddress), &p) {
		return nil
	}
	return &p
}

// Update shallow-merges the patch into an existing profile. Returns nil if
// no profile exists for the address — fetch-or-init is GetOrCreate's job.
func (s *ProfileService) Update(walletAddress string, patch ProfileUpdate) *models.Profile {
	p := s.Get(walletAddress)
	if p == nil {
		return nil
	}

	if patch.DisplayName != nil {
		p.DisplayName = *patch.DisplayName
	}
	if patch.AvatarURL != nil {
		p.AvatarURL = *patch.AvatarURL
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.Website != nil {
		p.Website = patch.Website
	}
	if patch.Twitter != nil {
		p.Twitter = patch.Twitter
	}
	if patch.Telegram != nil {
		p.Telegram = patch.Telegram
	}

	p.UpdatedAt = time.Now()
	s.Store.Set(profileKey(walletAddress), p)
	return p
}

// AddXP adds to total XP, recomputes the level, and logs an activity entry.
func (s *ProfileService) AddXP(walletAddress string, amount int64) *models.Profile {
	p := s.Get(walletAddress)
	if p == nil {
		return nil
	}

	p.Stats.TotalXP += amount
	p.Stats.CurrentLevel = models.LevelForXP(p.Stats.TotalXP)
	s.appendActivity(p, models.ActivityXPGained, fmt.Sprintf("Gained %d XP", amount), amount)

	p.UpdatedAt = time.Now()
	s.Store.Set(profileKey(walletAddress), p)

	_ = s.Achievements.AutoAward(walletAddress) // fire-and-forget
	return p
}

// RecordQuizCompletion applies a finished quiz to the profile: counters, XP,
// per-language/per-topic progress, streak, activity log, and quiz history.
func (s *ProfileService) RecordQuizCompletion(walletAddress, quizID string, score int, xpEarned int64, topic, language string) *models.Profile {
	p := s.Get(walletAddress)
	if p == nil {
		return nil
	}

	p.Stats.QuizzesCompleted++
	p.Stats.TotalXP += xpEarned
	p.Stats.CurrentLevel = models.LevelForXP(p.Stats.TotalXP)

	// Running mean over all completed quizzes.
	n := float64(p.Stats.QuizzesCompleted)
	p.Stats.AverageAccuracy = (p.Stats.AverageAccuracy*(n-1) + float64(score)) / n

	s.bumpLanguageProgress(p, language, xpEarned)
	s.bumpTopicProgress(p, topic, xpEarned)
	s.applyStreak(p)
	s.appendActivity(p, models.ActivityQuizCompleted,
		fmt.Sprintf("Completed quiz (%d%%) in %s", score, topic), xpEarned)

	p.CompletedQuizzes = append(p.CompletedQuizzes, models.CompletedQuiz{
		QuizID:      quizID,
		Score:       score,
		XPEarned:    xpEarned,
		Topic:       topic,
		Language:    language,
		CompletedAt: time.Now(),
	})

	p.UpdatedAt = time.Now()
	s.Store.Set(profileKey(walletAddress), p)

	_ = s.Achievements.AutoAward(walletAddress) // fire-and-forget
	return p
}

// RecordLessonCompletion is the lesson counterpart of RecordQuizCompletion.
func (s *ProfileService) RecordLessonCompletion(walletAddress, lessonID string, xpEarned int64, topic, language string) *models.Profile {
	p := s.Get(walletAddress)
	if p == nil {
		return nil
	}

	p.Stats.LessonsCompleted++
	p.Stats.TotalXP += xpEarned
	p.Stats.CurrentLevel = models.LevelForXP(p.Stats.TotalXP)

	s.bumpLanguageProgress(p, language, xpEarned)
	s.bumpTopicProgress(p, topic, xpEarned)
	s.applyStreak(p)
	s.appendActivity(p, models.ActivityLessonCompleted,
		fmt.Sprintf("Completed lesson in %s", topic), xpEarned)

	p.CompletedLessons = append(p.CompletedLessons, models.CompletedLesson{
		LessonID:    lessonID,
		XPEarned:    xpEarned,
		Topic:       topic,
		Language:    language,
		CompletedAt: time.Now(),
	})

	p.UpdatedAt = time.Now()
	s.Store.Set(profileKey(walletAddress), p)

	_ = s.Achievements.AutoAward(walletAddress) // fire-and-forget
	return p
}

// UpdateStreak credits today's activity toward the daily streak. Idempotent
// within a calendar day.
func (s *ProfileService) UpdateStreak(walletAddress string) *models.Profile {
	p := s.Get(walletAddress)
	if p == nil {
		return nil
	}

	s.applyStreak(p)
	p.UpdatedAt = time.Now()
	s.Store.Set(profileKey(walletAddress), p)
	return p
}

// AddActivity appends an arbitrary entry to the bounded activity log.
func (s *ProfileService) AddActivity(walletAddress string, kind models.ActivityType, description string, xp int64) *models.Profile {
	p := s.Get(walletAddress)
	if p == nil {
		return nil
	}

	s.appendActivity(p, kind, description, xp)
	p.UpdatedAt = time.Now()
	s.Store.Set(profileKey(walletAddress), p)
	return p
}

// GetAll scans the whole directory. Admin views only — no pagination, fine
// at small scale.
func (s *ProfileService) GetAll() []models.Profile {
	keys := s.Store.Keys(profileKeyPrefix)
	profiles := make([]models.Profile, 0, len(keys))
	for _, key := range keys {
		var p models.Profile
		if s.Store.Get(key, &p) {
			profiles = append(profiles, p)
		}
	}
	return profiles
}

// Clear removes the profile for a wallet. The only delete path.
func (s *ProfileService) Clear(walletAddress string) {
	s.Store.Remove(profileKey(walletAddress))
}

// --- internals ---

// applyStreak compares the last credited calendar day with today:
// same day is a no-op, yesterday extends the streak, anything else resets
// it to 1. LongestStreak is the running maximum.
func (s *ProfileService) applyStreak(p *models.Profile) {
	const day = "2006-01-02"
	today := time.Now().Format(day)
	yesterday := time.Now().AddDate(0, 0, -1).Format(day)

	switch p.LastActivityDate {
	case today:
		return // already credited today
	case yesterday:
		p.Stats.CurrentStreak++
	default:
		p.Stats.CurrentStreak = 1
	}
	if p.Stats.CurrentStreak > p.Stats.LongestStreak {
		p.Stats.LongestStreak = p.Stats.CurrentStreak
	}
	p.LastActivityDate = today
}

func (s *ProfileService) appendActivity(p *models.Profile, kind models.ActivityType, description string, xp int64) {
	entry := models.Activity{
		ID:          utils.GenerateID("activity"),
		Type:        kind,
		Description: description,
		XP:          xp,
		CreatedAt:   time.Now(),
	}
	p.RecentActivity = append([]models.Activity{entry}, p.RecentActivity...)
	if len(p.RecentActivity) > models.MaxRecentActivity {
		p.RecentActivity = p.RecentActivity[:models.MaxRecentActivity]
	}
}

// bumpLanguageProgress upserts the per-language entry.
// TODO: quiz completions land in LessonsCompleted here too (see
// RecordQuizCompletion callers) — confirm with product before renaming the
// counter, existing stored profiles already carry it this way.
func (s *ProfileService) bumpLanguageProgress(p *models.Profile, language string, xp int64) {
	for i := range p.LearningProgress {
		if p.LearningProgress[i].Language == language {
			p.LearningProgress[i].XP += xp
			p.LearningProgress[i].LessonsCompleted++
			return
		}
	}
	p.LearningProgress = append(p.LearningProgress, models.LanguageProgress{
		Language:         language,
		XP:               xp,
		LessonsCompleted: 1,
	})
}

func (s *ProfileService) bumpTopicProgress(p *models.Profile, topic string, xp int64) {
	for i := range p.TopicProgress {
		if p.TopicProgress[i].Topic == topic {
			p.TopicProgress[i].XP += xp
			p.TopicProgress[i].LessonsCompleted++
			return
		}
	}
	p.TopicProgress = append(p.TopicProgress, models.TopicProgress{
		Topic:            topic,
		XP:               xp,
		LessonsCompleted: 1,
	})
}

func shortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

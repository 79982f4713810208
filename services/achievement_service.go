package services

import (
	"log"
	"time"

	"learn-publish-system/models"
	"learn-publish-system/storage"
)

type AchievementService struct {
	Store storage.Store
}

func NewAchievementService(store storage.Store) *AchievementService {
	return &AchievementService{Store: store}
}

// AutoAward checks all achievement triggers for a wallet after a progress
// update and appends any newly earned codes to the profile. Idempotent —
// a code is never awarded twice.
func (s *AchievementService) AutoAward(walletAddress string) error {
	key := profileKey(walletAddress)
	var p models.Profile
	if !s.Store.Get(key, &p) {
		return nil
	}

	awardedAny := false
	for _, trigger := range models.AchievementTriggers {
		if !s.meetsThreshold(&p, trigger.Threshold) {
			continue
		}
		if hasAchievement(&p, trigger.Code) {
			continue
		}
		p.Achievements = append(p.Achievements, models.AwardedAchievement{
			Code:      trigger.Code,
			AwardedAt: time.Now(),
		})
		awardedAny = true
		log.Printf("🎖️ [ACHIEVEMENT] %s → %s", trigger.Name, p.WalletAddress)
	}

	if awardedAny {
		s.Store.Set(key, &p)
	}
	return nil
}

func (s *AchievementService) meetsThreshold(p *models.Profile, req map[string]int64) bool {
	for key, required := range req {
		switch key {
		case "quizzes_completed":
			if int64(p.Stats.QuizzesCompleted) < required {
				return false
			}
		case "lessons_completed":
			if int64(p.Stats.LessonsCompleted) < required {
				return false
			}
		case "current_streak":
			if int64(p.Stats.CurrentStreak) < required {
				return false
			}
		case "level":
			if int64(p.Stats.CurrentLevel) < required {
				return false
			}
		case "credentials":
			if int64(len(p.SkillCredentials)) < required {
				return false
			}
		}
	}
	return true
}

func hasAchievement(p *models.Profile, code string) bool {
	for _, a := range p.Achievements {
		if a.Code == code {
			return true
		}
	}
	return false
}

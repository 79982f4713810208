package models

// AchievementType: static config for auto-awarded achievements.
type AchievementType struct {
	Code        string           `json:"code"` // e.g., "FIRST_QUIZ", "STREAK_7"
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Rarity      string           `json:"rarity"`    // common, rare, epic, legendary
	Threshold   map[string]int64 `json:"threshold"` // e.g., {"quizzes_completed": 10}
}

// AchievementTriggers are checked against profile stats after every
// completion or XP update. All keys in a threshold must be met.
var AchievementTriggers = []AchievementType{
	{
		Code:        "FIRST_QUIZ",
		Name:        "Quiz Rookie",
		Description: "Completed your first quiz",
		Rarity:      "common",
		Threshold:   map[string]int64{"quizzes_completed": 1},
	},
	{
		Code:        "FIRST_LESSON",
		Name:        "First Steps",
		Description: "Completed your first lesson",
		Rarity:      "common",
		Threshold:   map[string]int64{"lessons_completed": 1},
	},
	{
		Code:        "QUIZ_10",
		Name:        "Quiz Veteran",
		Description: "Completed 10 quizzes",
		Rarity:      "rare",
		Threshold:   map[string]int64{"quizzes_completed": 10},
	},
	{
		Code:        "STREAK_7",
		Name:        "One Week Strong",
		Description: "Kept a 7-day learning streak",
		Rarity:      "rare",
		Threshold:   map[string]int64{"current_streak": 7},
	},
	{
		Code:        "LEVEL_10",
		Name:        "Double Digits",
		Description: "Reached level 10",
		Rarity:      "epic",
		Threshold:   map[string]int64{"level": 10},
	},
	{
		Code:        "FIRST_CREDENTIAL",
		Name:        "On the Ledger",
		Description: "Minted your first skill credential",
		Rarity:      "epic",
		Threshold:   map[string]int64{"credentials": 1},
	},
}

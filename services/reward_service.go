// services/reward_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"learn-publish-system/models"
	"learn-publish-system/storage"
	"learn-publish-system/utils"
	"learn-publish-system/workers"

	"github.com/google/uuid"
)

// RewardService hands reward mints to the external chain service and stores
// the resulting skill credential on the profile. The tx hash is opaque —
// kept for display only, never interpreted.
type RewardService struct {
	Store        storage.Store
	Achievements *AchievementService
	Chain        *workers.ChainClient
}

func NewRewardService(store storage.Store, achievements *AchievementService, chain *workers.ChainClient) *RewardService {
	return &RewardService{Store: store, Achievements: achievements, Chain: chain}
}

// CredentialRequest describes the skill being claimed and the reward amount
// to mint for it.
type CredentialRequest struct {
	Skill    string  `json:"skill"`
	Level    int     `json:"level"`
	Topic    string  `json:"topic"`
	Language string  `json:"language"`
	Amount   float64 `json:"amount"`
}

// MintResult is surfaced to the UI layer as-is. Failed mints are not retried
// or queued — the caller may re-invoke.
type MintResult struct {
	Success bool   `json:"success"`
	TxHash  string `json:"tx_hash,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MintSkillCredential mints a reward to the wallet and appends the credential
// to its profile.
func (s *RewardService) MintSkillCredential(ctx context.Context, walletAddress string, req CredentialRequest) MintResult {
	key := profileKey(walletAddress)
	var p models.Profile
	if !s.Store.Get(key, &p) {
		return MintResult{Success: false, Error: "profile not found"}
	}
	if s.Chain == nil {
		return MintResult{Success: false, Error: "chain service not configured"}
	}

	txHash, err := s.Chain.Mint(ctx, p.WalletAddress, req.Amount)
	if err != nil {
		log.Printf("❌ [REWARD] Mint failed for %s: %v", p.WalletAddress, err)
		return MintResult{Success: false, Error: err.Error()}
	}

	// Reload before writing: the mint call is slow and the profile may have
	// moved underneath us.
	if !s.Store.Get(key, &p) {
		return MintResult{Success: false, Error: "profile not found"}
	}

	credential := models.SkillCredential{
		ID:       uuid.NewString(),
		Skill:    req.Skill,
		Level:    req.Level,
		Topic:    req.Topic,
		Language: req.Language,
		MintedAt: time.Now(),
		TxRef:    &txHash,
	}
	p.SkillCredentials = append(p.SkillCredentials, credential)
	p.RecentActivity = append([]models.Activity{{
		ID:          utils.GenerateID("activity"),
		Type:        models.ActivityCredentialMint,
		Description: fmt.Sprintf("Minted credential: %s (level %d)", req.Skill, req.Level),
		CreatedAt:   time.Now(),
	}}, p.RecentActivity...)
	if len(p.RecentActivity) > models.MaxRecentActivity {
		p.RecentActivity = p.RecentActivity[:models.MaxRecentActivity]
	}
	p.UpdatedAt = time.Now()
	s.Store.Set(key, &p)

	_ = s.Achievements.AutoAward(walletAddress) // fire-and-forget

	log.Printf("🏅 [REWARD] Credential minted: %s (level %d) → %s (tx %s)",
		req.Skill, req.Level, p.WalletAddress, txHash)
	return MintResult{Success: true, TxHash: txHash}
}

// GetCredentials lists the wallet's minted skill credentials, or an error
// if no profile exists.
func (s *RewardService) GetCredentials(walletAddress string) ([]models.SkillCredential, error) {
	var p models.Profile
	if !s.Store.Get(profileKey(walletAddress), &p) {
		return nil, fmt.Errorf("profile not found for %s", walletAddress)
	}
	return p.SkillCredentials, nil
}

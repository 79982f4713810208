package services

import (
	"sort"
	"strings"

	"learn-publish-system/models"
	"learn-publish-system/storage"
)

const feedKey = "community_feed"

// FeedService maintains the capped, newest-first community feed. The feed is
// a denormalized cache — the content directory remains the source of truth,
// so trimming or losing entries here is acceptable.
type FeedService struct {
	Store storage.Store
}

func NewFeedService(store storage.Store) *FeedService {
	return &FeedService{Store: store}
}

// Append prepends the entry and trims the tail past the cap.
func (s *FeedService) Append(entry models.FeedEntry) {
	var entries []models.FeedEntry
	s.Store.Get(feedKey, &entries)

	entries = append([]models.FeedEntry{entry}, entries...)
	if len(entries) > models.MaxFeedEntries {
		entries = entries[:models.MaxFeedEntries]
	}
	s.Store.Set(feedKey, entries)
}

// GetFeed returns all visible entries, newest first. Entries flagged private
// are filtered defensively in case one was appended before a visibility
// correction on the source record.
func (s *FeedService) GetFeed() []models.FeedEntry {
	var entries []models.FeedEntry
	s.Store.Get(feedKey, &entries)

	visible := make([]models.FeedEntry, 0, len(entries))
	for _, e := range entries {
		if !e.IsPublic {
			continue
		}
		visible = append(visible, e)
	}
	return visible
}

// Search runs a linear scan: case-insensitive substring match over title,
// description and creator name, combined with equality filters, newest first.
func (s *FeedService) Search(query string, filters models.FeedFilters) []models.FeedEntry {
	q := strings.ToLower(strings.TrimSpace(query))

	var results []models.FeedEntry
	for _, e := range s.GetFeed() {
		if filters.Kind != "" && e.Kind != filters.Kind {
			continue
		}
		if filters.Language != "" && e.Language != filters.Language {
			continue
		}
		if filters.Topic != "" && e.Topic != filters.Topic {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) &&
			!strings.Contains(strings.ToLower(e.CreatorName), q) {
			continue
		}
		results = append(results, e)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results
}

// UpdateEntry patches counters on a single entry in place, mirroring changes
// from the source record. Returns false if the id is not in the feed.
func (s *FeedService) UpdateEntry(id string, patch models.FeedEntryUpdate) bool {
	var entries []models.FeedEntry
	if !s.Store.Get(feedKey, &entries) {
		return false
	}

	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		if patch.Views != nil {
			entries[i].Views = *patch.Views
		}
		if patch.Likes != nil {
			entries[i].Likes = *patch.Likes
		}
		if patch.Attempts != nil {
			entries[i].Attempts = *patch.Attempts
		}
		if patch.AverageScore != nil {
			entries[i].AverageScore = *patch.AverageScore
		}
		s.Store.Set(feedKey, entries)
		return true
	}
	return false
}

// SweepStale re-trims the persisted list and drops lesson entries whose
// source record has since gone private. Called by the maintenance scheduler.
func (s *FeedService) SweepStale() int {
	var entries []models.FeedEntry
	if !s.Store.Get(feedKey, &entries) {
		return 0
	}

	kept := make([]models.FeedEntry, 0, len(entries))
	for _, e := range entries {
		if e.Kind == models.FeedKindLesson {
			var lesson models.Lesson
			if s.Store.Get(e.ID, &lesson) && !lesson.IsPublic {
				continue
			}
		}
		kept = append(kept, e)
	}
	if len(kept) > models.MaxFeedEntries {
		kept = kept[:models.MaxFeedEntries]
	}

	dropped := len(entries) - len(kept)
	if dropped > 0 {
		s.Store.Set(feedKey, kept)
	}
	return dropped
}

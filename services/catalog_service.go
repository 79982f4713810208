package services

import (
	"sort"

	"learn-publish-system/models"

	"golang.org/x/text/language"
)

// CatalogService resolves bundled multilingual lesson tables. Language
// resolution goes through a BCP 47 matcher per topic, falling back to
// English when the requested language has no table.
type CatalogService struct {
	matchers map[string]language.Matcher
	tags     map[string][]string
}

func NewCatalogService() *CatalogService {
	s := &CatalogService{
		matchers: make(map[string]language.Matcher),
		tags:     make(map[string][]string),
	}
	for topic, byLang := range models.CatalogTables {
		// English first so it wins when nothing else matches.
		langs := make([]string, 0, len(byLang))
		for lang := range byLang {
			if lang != "en" {
				langs = append(langs, lang)
			}
		}
		sort.Strings(langs)
		ordered := append([]string{"en"}, langs...)

		tags := make([]language.Tag, 0, len(ordered))
		for _, lang := range ordered {
			tags = append(tags, language.Make(lang))
		}
		s.matchers[topic] = language.NewMatcher(tags)
		s.tags[topic] = ordered
	}
	return s
}

// Topics lists the bundled topic ids.
func (s *CatalogService) Topics() []string {
	topics := make([]string, 0, len(models.CatalogTables))
	for topic := range models.CatalogTables {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// Lookup returns the catalog lesson for a topic in the closest available
// language, along with the language actually served. The second return is
// false only when the topic itself is unknown.
func (s *CatalogService) Lookup(topic, requestedLang string) (*models.CatalogLesson, string, bool) {
	byLang, ok := models.CatalogTables[topic]
	if !ok {
		return nil, "", false
	}

	matcher := s.matchers[topic]
	_, index, _ := matcher.Match(language.Make(requestedLang))
	served := s.tags[topic][index]

	lesson := byLang[served]
	return &lesson, served, true
}

package services

import "testing"

func TestCatalogTopics(t *testing.T) {
	svc := NewCatalogService()

	topics := svc.Topics()
	if len(topics) != 2 || topics[0] != "crypto-basics" || topics[1] != "culture" {
		t.Fatalf("topics=%v, want [crypto-basics culture]", topics)
	}
}

func TestCatalogLookupExactLanguage(t *testing.T) {
	svc := NewCatalogService()

	lesson, served, ok := svc.Lookup("crypto-basics", "es")
	if !ok {
		t.Fatal("known topic reported missing")
	}
	if served != "es" {
		t.Fatalf("served=%q, want es", served)
	}
	if lesson.Title != "¿Qué es una billetera?" {
		t.Fatalf("title=%q, want the Spanish table", lesson.Title)
	}
}

func TestCatalogLookupFallsBackToEnglish(t *testing.T) {
	svc := NewCatalogService()

	lesson, served, ok := svc.Lookup("crypto-basics", "de")
	if !ok {
		t.Fatal("known topic reported missing")
	}
	if served != "en" {
		t.Fatalf("served=%q, want en fallback for unsupported language", served)
	}
	if lesson.Title != "What Is a Wallet?" {
		t.Fatalf("title=%q, want the English table", lesson.Title)
	}
}

func TestCatalogLookupRegionalVariant(t *testing.T) {
	svc := NewCatalogService()

	// es-MX should resolve to the base Spanish table, not fall back.
	_, served, ok := svc.Lookup("crypto-basics", "es-MX")
	if !ok || served != "es" {
		t.Fatalf("served=%q ok=%v, want es", served, ok)
	}
}

func TestCatalogLookupUnknownTopic(t *testing.T) {
	svc := NewCatalogService()

	if _, _, ok := svc.Lookup("astrology", "en"); ok {
		t.Fatal("unknown topic reported present")
	}
}

// Package testutil provides small fixture catalogs and tables for tests.
package testutil

import (
	"testing"

	"bizpulse/internal/catalog"
	"bizpulse/internal/models"
	"bizpulse/internal/topics"
)

// Fixture topics.
const (
	TopicAlpha models.TopicTag = "alpha"
	TopicBeta  models.TopicTag = "beta"
	TopicHelp  models.TopicTag = "help"
)

// Resource builds a valid record.
func Resource(id int, name string, keywords ...string) models.ResourceRecord {
	return models.ResourceRecord{
		ID:          id,
		Name:        name,
		Description: "Fixture resource " + name,
		URL:         "https://resources.example.com/" + name,
		Keywords:    keywords,
	}
}

// FixtureResources returns three small buckets. Resource id 7 appears in
// both alpha and beta to exercise non-unique ids.
func FixtureResources() map[models.TopicTag][]models.ResourceRecord {
	return map[models.TopicTag][]models.ResourceRecord{
		TopicAlpha: {
			Resource(1, "alpha-one", "apple", "apricot"),
			Resource(2, "alpha-two", "apple"),
			Resource(7, "shared", "plum"),
		},
		TopicBeta: {
			Resource(3, "beta-one", "banana", "apple"),
			Resource(7, "shared", "plum"),
		},
		TopicHelp: {
			Resource(4, "help-desk", "help"),
		},
	}
}

// FixtureCatalog builds the fixture catalog.
func FixtureCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(FixtureResources())
	if err != nil {
		t.Fatalf("failed to build fixture catalog: %v", err)
	}
	return c
}

// FixtureEntries mirrors the fixture catalog keys; help is declared last.
func FixtureEntries() []topics.Entry {
	return []topics.Entry{
		{Topic: TopicAlpha, Keywords: []string{"apple", "apricot"}},
		{Topic: TopicBeta, Keywords: []string{"banana"}},
		{Topic: TopicHelp, Keywords: []string{"help"}},
	}
}

// FixtureTable builds the fixture topic table.
func FixtureTable(t testing.TB) *topics.Table {
	t.Helper()
	table, err := topics.NewTable(FixtureEntries())
	if err != nil {
		t.Fatalf("failed to build fixture table: %v", err)
	}
	return table
}

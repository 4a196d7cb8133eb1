package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bizpulse/internal/catalog"
	"bizpulse/internal/match"
	"bizpulse/internal/models"
	"bizpulse/internal/recommend"
	"bizpulse/internal/topics"
)

// CatalogFile is the YAML file that replaces the built-in taxonomy and
// resources. Sections left out keep their built-in values.
type CatalogFile struct {
	FallbackTopic models.TopicTag                             `yaml:"fallback_topic"`
	Topics        []TopicConfig                               `yaml:"topics"`
	Resources     map[models.TopicTag][]models.ResourceRecord `yaml:"resources"`
}

// TopicConfig is one ordered row of the topic table.
type TopicConfig struct {
	Name     models.TopicTag `yaml:"name"`
	Keywords []string        `yaml:"keywords"`
}

// LoadCatalogFile loads the YAML catalog file at path.
// Returns nil without error if path is empty or the file doesn't exist.
func LoadCatalogFile(path string) (*CatalogFile, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Catalog file is optional
			return nil, nil
		}
		return nil, err
	}

	var f CatalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &f, nil
}

// Entries returns the topic table rows, or the built-in rows when the file
// declares none.
func (f *CatalogFile) Entries() []topics.Entry {
	if f == nil || len(f.Topics) == 0 {
		return topics.DefaultEntries()
	}
	out := make([]topics.Entry, 0, len(f.Topics))
	for _, t := range f.Topics {
		out = append(out, topics.Entry{Topic: t.Name, Keywords: t.Keywords})
	}
	return out
}

// ResourceMap returns the catalog buckets, or the built-in buckets when the
// file declares none.
func (f *CatalogFile) ResourceMap() map[models.TopicTag][]models.ResourceRecord {
	if f == nil || len(f.Resources) == 0 {
		return catalog.DefaultResources()
	}
	return f.Resources
}

// Fallback returns the fallback topic, defaulting to support.
func (f *CatalogFile) Fallback() models.TopicTag {
	if f == nil || f.FallbackTopic == "" {
		return models.FallbackTopic
	}
	return f.FallbackTopic
}

// BuildEngine loads the catalog file named by cfg, if any, and builds the
// recommendation engine from it.
func BuildEngine(cfg *Config) (*recommend.Engine, error) {
	mode, err := match.ParseMode(cfg.MatchMode)
	if err != nil {
		return nil, err
	}

	f, err := LoadCatalogFile(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}

	c, err := catalog.New(f.ResourceMap())
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	table, err := topics.NewTable(f.Entries())
	if err != nil {
		return nil, fmt.Errorf("invalid topic table: %w", err)
	}
	return recommend.New(c, table, f.Fallback(), mode)
}

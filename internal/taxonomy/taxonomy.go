// Package taxonomy holds the process-wide topic taxonomy: ordered topic
// definitions and the noise keyword list. The taxonomy is loaded once at
// startup and never mutated, so no synchronization is needed.
package taxonomy

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// TopicDefinition describes one topic: its keywords, weight and display
// label. Immutable after load.
type TopicDefinition struct {
	ID       string   `json:"id"       yaml:"id"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Weight   float64  `json:"weight"   yaml:"weight"`
	Label    string   `json:"label"    yaml:"label"`
}

// Taxonomy is the full topic table plus the noise keyword list.
//
// Topics is an ordered slice, not a map: primary-topic tie-breaks resolve
// to the first topic in configured order, so iteration order must be
// fixed and reproducible.
type Taxonomy struct {
	Topics        []TopicDefinition `json:"topics"         yaml:"topics"`
	NoiseKeywords []string          `json:"noise_keywords" yaml:"noise_keywords"`
}

// Load reads a taxonomy from a YAML file and validates it.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file %s: %w", path, err)
	}

	var tax Taxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}

	if err := tax.Validate(); err != nil {
		return nil, fmt.Errorf("validate taxonomy %s: %w", path, err)
	}
	return &tax, nil
}

// Validate checks structural invariants: unique non-empty topic ids,
// weights in (0,1], at least one keyword per topic.
func (t *Taxonomy) Validate() error {
	if len(t.Topics) == 0 {
		return fmt.Errorf("taxonomy has no topics")
	}

	seen := make(map[string]bool, len(t.Topics))
	for i := range t.Topics {
		topic := &t.Topics[i]
		if topic.ID == "" {
			return fmt.Errorf("topic %d has empty id", i)
		}
		if seen[topic.ID] {
			return fmt.Errorf("duplicate topic id %q", topic.ID)
		}
		seen[topic.ID] = true

		if topic.Weight <= 0 || topic.Weight > 1 {
			return fmt.Errorf("topic %q weight %v outside (0,1]", topic.ID, topic.Weight)
		}
		if len(topic.Keywords) == 0 {
			return fmt.Errorf("topic %q has no keywords", topic.ID)
		}
		for _, kw := range topic.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("topic %q has an empty keyword", topic.ID)
			}
		}
	}
	return nil
}

// TopicByID returns the definition for a topic id, nil when unknown.
func (t *Taxonomy) TopicByID(id string) *TopicDefinition {
	for i := range t.Topics {
		if t.Topics[i].ID == id {
			return &t.Topics[i]
		}
	}
	return nil
}

// KeywordCount returns the total keyword count across all topics.
func (t *Taxonomy) KeywordCount() int {
	n := 0
	for i := range t.Topics {
		n += len(t.Topics[i].Keywords)
	}
	return n
}

package taxonomy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	tax := Default()
	if err := tax.Validate(); err != nil {
		t.Fatalf("Default() taxonomy failed validation: %v", err)
	}
	if len(tax.Topics) != 8 {
		t.Errorf("expected 8 topics, got %d", len(tax.Topics))
	}
	if tax.Topics[0].ID != "llm" {
		t.Errorf("expected first topic llm, got %q", tax.Topics[0].ID)
	}
	if len(tax.NoiseKeywords) == 0 {
		t.Error("expected noise keywords")
	}
}

func TestTopicByID(t *testing.T) {
	tax := Default()

	topic := tax.TopicByID("ai_infra")
	if topic == nil {
		t.Fatal("expected ai_infra topic")
	}
	if topic.Weight != 0.9 {
		t.Errorf("expected ai_infra weight 0.9, got %v", topic.Weight)
	}
	if topic.Label != "AI Infrastructure" {
		t.Errorf("unexpected label %q", topic.Label)
	}

	if got := tax.TopicByID("nonexistent"); got != nil {
		t.Errorf("expected nil for unknown topic, got %+v", got)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		tax  Taxonomy
	}{
		{"no topics", Taxonomy{}},
		{"empty id", Taxonomy{Topics: []TopicDefinition{
			{ID: "", Keywords: []string{"x"}, Weight: 0.5},
		}}},
		{"duplicate id", Taxonomy{Topics: []TopicDefinition{
			{ID: "a", Keywords: []string{"x"}, Weight: 0.5},
			{ID: "a", Keywords: []string{"y"}, Weight: 0.5},
		}}},
		{"zero weight", Taxonomy{Topics: []TopicDefinition{
			{ID: "a", Keywords: []string{"x"}, Weight: 0},
		}}},
		{"weight above one", Taxonomy{Topics: []TopicDefinition{
			{ID: "a", Keywords: []string{"x"}, Weight: 1.5},
		}}},
		{"no keywords", Taxonomy{Topics: []TopicDefinition{
			{ID: "a", Weight: 0.5},
		}}},
		{"blank keyword", Taxonomy{Topics: []TopicDefinition{
			{ID: "a", Keywords: []string{"  "}, Weight: 0.5},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.tax.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadFromYAML(t *testing.T) {
	content := `topics:
  - id: llm
    keywords: ["gpt", "claude"]
    weight: 1.0
    label: "Large Language Models"
  - id: infra
    keywords: ["gpu"]
    weight: 0.9
    label: "Infrastructure"
noise_keywords:
  - "board games"
`
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tax, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(tax.Topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(tax.Topics))
	}
	if tax.Topics[1].ID != "infra" {
		t.Errorf("topic order not preserved: got %q", tax.Topics[1].ID)
	}
	if len(tax.NoiseKeywords) != 1 || tax.NoiseKeywords[0] != "board games" {
		t.Errorf("unexpected noise keywords: %v", tax.NoiseKeywords)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/taxonomy.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestKeywordCount(t *testing.T) {
	tax := &Taxonomy{Topics: []TopicDefinition{
		{ID: "a", Keywords: []string{"x", "y"}, Weight: 0.5},
		{ID: "b", Keywords: []string{"z"}, Weight: 0.5},
	}}
	if got := tax.KeywordCount(); got != 3 {
		t.Errorf("KeywordCount() = %d, want 3", got)
	}
}

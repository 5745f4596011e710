package editorial

import (
	"testing"

	"github.com/jonesrussell/digest-curator/internal/domain"
)

func TestOneLinerPatterns(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Show HN: A tiny vector database", "New large language models project worth checking out"},
		{"Launch HN: Acme (YC W25)", "YC startup launching in large language models space"},
		{"Ask HN: How do you test agents?", "Community discussion on large language models"},
		{"GPT-5 vs Claude benchmark", "Performance/comparison data for large language models"},
		{"Acme raises $40M Series B", "Industry news: funding/M&A in large language models"},
		{"Introducing our new inference engine", "New release or announcement in large language models"},
		{"A guide to fine-tuning", "Learning resource for large language models"},
		{"Thoughts on model evaluation", "Large Language Models insight worth reading"},
	}

	for _, tt := range tests {
		if got := oneLiner(tt.title, "Large Language Models"); got != tt.want {
			t.Errorf("oneLiner(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestOneLinerFirstPatternWins(t *testing.T) {
	// "Show HN" outranks the release cue even though both appear.
	got := oneLiner("Show HN: Announce-o-matic release bot", "Developer Tools")
	want := "New developer tools project worth checking out"
	if got != want {
		t.Errorf("oneLiner() = %q, want %q", got, want)
	}
}

func TestWhyItMattersKeepsFirstTwoSignals(t *testing.T) {
	record := &domain.ContentRecord{ImpressionsLikes: 400}
	cls := &domain.Classification{PrimaryTopic: "llm", RelevanceScore: 0.8}
	quality := &domain.EngagementQuality{Velocity: 25, IsHighSignal: true}

	// Four signals fire; only the first two survive.
	got := whyItMatters(record, cls, quality)
	want := "rapidly gaining attention; highly upvoted"
	if got != want {
		t.Errorf("whyItMatters() = %q, want %q", got, want)
	}
}

func TestWhyItMattersSingleSignal(t *testing.T) {
	record := &domain.ContentRecord{ImpressionsLikes: 50}
	cls := &domain.Classification{PrimaryTopic: "ai_infra"}
	quality := &domain.EngagementQuality{}

	if got := whyItMatters(record, cls, quality); got != "infrastructure implications" {
		t.Errorf("whyItMatters() = %q", got)
	}
}

func TestWhyItMattersFallback(t *testing.T) {
	record := &domain.ContentRecord{ImpressionsLikes: 10}
	cls := &domain.Classification{PrimaryTopic: "tech_industry"}
	quality := &domain.EngagementQuality{}

	if got := whyItMatters(record, cls, quality); got != "worth monitoring" {
		t.Errorf("whyItMatters() = %q, want fallback", got)
	}
}

func TestAudienceFor(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"llm", "AI engineers & researchers"},
		{"ml_research", "AI engineers & researchers"},
		{"ai_infra", "ML platform engineers"},
		{"ai_product", "Product managers & founders"},
		{"ai_ethics", "AI policy & safety researchers"},
		{"developer_tools", "Software developers"},
		{"tech_industry", "Tech industry watchers"},
		{"data_engineering", "General tech audience"},
		{"", "General tech audience"},
	}

	for _, tt := range tests {
		if got := audienceFor(tt.topic); got != tt.want {
			t.Errorf("audienceFor(%q) = %q, want %q", tt.topic, got, tt.want)
		}
	}
}

func TestPriority(t *testing.T) {
	tests := []struct {
		name      string
		tier      string
		relevance float64
		want      int
	}{
		{"trending high relevance", domain.TierTrendingMustInclude, 0.7, 1},
		{"trending low relevance falls through", domain.TierTrendingMustInclude, 0.5, 4},
		{"high quality", domain.TierHighQuality, 0.6, 2},
		{"high quality low relevance", domain.TierHighQuality, 0.4, 3},
		{"good", domain.TierGood, 0.2, 3},
		{"moderate relevant", domain.TierModerate, 0.4, 4},
		{"low tier low relevance", domain.TierLow, 0.2, 5},
		{"relevance boundary not above", domain.TierModerate, 0.3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := &domain.Classification{RelevanceScore: tt.relevance}
			quality := &domain.EngagementQuality{QualityTier: tt.tier}
			if got := priority(cls, quality); got != tt.want {
				t.Errorf("priority() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSynthesizeDefaultsLabel(t *testing.T) {
	s := New()
	record := &domain.ContentRecord{Title: "Something unclassifiable", ImpressionsLikes: 5}
	cls := &domain.Classification{}
	quality := &domain.EngagementQuality{QualityTier: domain.TierLow}

	got := s.Synthesize(record, cls, quality)
	if got.OneLiner != "Tech insight worth reading" {
		t.Errorf("one_liner = %q", got.OneLiner)
	}
	if got.AudienceFit != "General tech audience" {
		t.Errorf("audience_fit = %q", got.AudienceFit)
	}
	if got.NewsletterPriority != 5 {
		t.Errorf("newsletter_priority = %d", got.NewsletterPriority)
	}
}

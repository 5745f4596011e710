// Package editorial produces newsletter copy for curated items: a
// one-line summary, a why-it-matters line, an audience fit and a
// numeric priority. All output is assembled from fixed templates and
// signal phrases so identical input always yields identical copy.
package editorial

import (
	"fmt"
	"strings"

	"github.com/jonesrussell/digest-curator/internal/domain"
)

// Signal thresholds for the why-it-matters line.
const (
	attentionVelocity = 20.0
	upvotedLikes      = 300
	maxSignals        = 2
)

// titlePattern maps title cues to a one-liner template. The topic label,
// lowercased, fills the %s slot.
type titlePattern struct {
	cues     []string
	template string
}

// titlePatterns are evaluated in order; the first cue hit wins.
var titlePatterns = []titlePattern{
	{[]string{"show hn"}, "New %s project worth checking out"},
	{[]string{"launch hn"}, "YC startup launching in %s space"},
	{[]string{"ask hn"}, "Community discussion on %s"},
	{[]string{"benchmark", "comparison", "vs"}, "Performance/comparison data for %s"},
	{[]string{"raises", "funding", "acquisition"}, "Industry news: funding/M&A in %s"},
	{[]string{"release", "announce", "introducing"}, "New release or announcement in %s"},
	{[]string{"tutorial", "guide", "how to"}, "Learning resource for %s"},
}

// Synthesizer builds editorial content from classification and
// engagement signals. It is stateless and safe for concurrent use.
type Synthesizer struct{}

// New returns an editorial synthesizer.
func New() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize produces the editorial block for one item.
func (s *Synthesizer) Synthesize(record *domain.ContentRecord, cls *domain.Classification, quality *domain.EngagementQuality) domain.EditorialContent {
	label := cls.PrimaryTopicLabel
	if label == "" {
		label = "Tech"
	}

	return domain.EditorialContent{
		OneLiner:           oneLiner(record.Title, label),
		WhyItMatters:       whyItMatters(record, cls, quality),
		AudienceFit:        audienceFor(cls.PrimaryTopic),
		NewsletterPriority: priority(cls, quality),
	}
}

// oneLiner picks a summary template from title cues. Cue matching is
// substring containment on the lowercased title, so "vs" also hits
// inside words like "vscode".
func oneLiner(title, label string) string {
	lower := strings.ToLower(title)
	for _, p := range titlePatterns {
		for _, cue := range p.cues {
			if strings.Contains(lower, cue) {
				return fmt.Sprintf(p.template, strings.ToLower(label))
			}
		}
	}
	return fmt.Sprintf("%s insight worth reading", label)
}

// whyItMatters collects signal phrases in fixed order and keeps the
// first two, joined by "; ".
func whyItMatters(record *domain.ContentRecord, cls *domain.Classification, quality *domain.EngagementQuality) string {
	var signals []string

	if quality.Velocity > attentionVelocity {
		signals = append(signals, "rapidly gaining attention")
	}
	if record.ImpressionsLikes > upvotedLikes {
		signals = append(signals, "highly upvoted")
	}
	if quality.IsHighSignal {
		signals = append(signals, "quality discussion")
	}
	if strings.Contains(cls.PrimaryTopic, "llm") || strings.Contains(cls.PrimaryTopic, "ml_research") {
		signals = append(signals, "directly relevant to practitioners")
	}
	if strings.Contains(cls.PrimaryTopic, "ai_infra") {
		signals = append(signals, "infrastructure implications")
	}
	if strings.Contains(cls.PrimaryTopic, "ai_product") {
		signals = append(signals, "commercial application")
	}

	if len(signals) == 0 {
		return "worth monitoring"
	}
	if len(signals) > maxSignals {
		signals = signals[:maxSignals]
	}
	return strings.Join(signals, "; ")
}

func audienceFor(topic string) string {
	switch topic {
	case "llm", "ml_research":
		return "AI engineers & researchers"
	case "ai_infra":
		return "ML platform engineers"
	case "ai_product":
		return "Product managers & founders"
	case "ai_ethics":
		return "AI policy & safety researchers"
	case "developer_tools":
		return "Software developers"
	case "tech_industry":
		return "Tech industry watchers"
	default:
		return "General tech audience"
	}
}

// priority maps quality tier and relevance to a 1 (highest) to 5
// (lowest) newsletter priority.
func priority(cls *domain.Classification, quality *domain.EngagementQuality) int {
	relevance := cls.RelevanceScore
	switch {
	case quality.QualityTier == domain.TierTrendingMustInclude && relevance > 0.6:
		return 1
	case quality.QualityTier == domain.TierHighQuality && relevance > 0.5:
		return 2
	case quality.QualityTier == domain.TierGood || quality.QualityTier == domain.TierHighQuality:
		return 3
	case relevance > 0.3:
		return 4
	default:
		return 5
	}
}

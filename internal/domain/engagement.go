package domain

// Quality tier constants, ordered from excluded to least newsletter-worthy.
// The analyzer evaluates them in strict priority order; skip_flamewar wins
// over trending_must_include even when both conditions hold.
const (
	TierSkipFlamewar        = "skip_flamewar"
	TierTrendingMustInclude = "trending_must_include"
	TierHighQuality         = "high_quality"
	TierGood                = "good"
	TierModerate            = "moderate"
	TierLow                 = "low"
)

// EngagementQuality holds derived quality signals for one record.
// Numeric fields are rounded for presentation (2 decimals, HoursOld 1);
// tier classification happens on unrounded values before rounding.
type EngagementQuality struct {
	EngagementRatio float64 `json:"engagement_ratio"`
	IsFlamewar      bool    `json:"is_flamewar"`
	IsHighSignal    bool    `json:"is_high_signal"`
	IsEmerging      bool    `json:"is_emerging"`
	DiscussionDepth float64 `json:"discussion_depth"`
	Velocity        float64 `json:"velocity"`
	HoursOld        float64 `json:"hours_old"`
	QualityTier     string  `json:"quality_tier"`
}

// EditorialContent is the template-generated editorial block for one item.
type EditorialContent struct {
	OneLiner           string `json:"one_liner"`
	WhyItMatters       string `json:"why_it_matters"`
	AudienceFit        string `json:"audience_fit"`
	NewsletterPriority int    `json:"newsletter_priority"` // 1..5, 1 highest
}

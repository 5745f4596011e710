// Package engagement derives quality signals from raw engagement counts.
// The signals interpret engagement shape rather than magnitude: a post
// with far more replies than likes reads as contentious, a post with
// high likes and moderate discussion reads as high signal.
package engagement

import (
	"math"
	"time"

	"github.com/jonesrussell/digest-curator/internal/domain"
	"github.com/jonesrussell/digest-curator/internal/logger"
)

// Thresholds for engagement signals and quality tiers.
const (
	flamewarRatio   = 1.5
	flamewarReplies = 100

	highSignalLikes = 200
	highSignalRatio = 0.5

	emergingMinLikes = 50
	emergingMaxLikes = 200
	emergingRatio    = 0.8

	trendingVelocity = 20.0
	trendingLikes    = 100

	highQualityLikes = 300
	highQualityRatio = 0.6

	goodLikes     = 100
	moderateLikes = 30

	// fallbackHoursOld is assumed when published_at is missing or
	// unparseable. Velocity is zero in that case.
	fallbackHoursOld = 24.0
)

// timestampLayouts are tried in order when parsing published_at.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Analyzer computes engagement quality for content records. The clock is
// injectable so velocity and age are reproducible in tests.
type Analyzer struct {
	now    func() time.Time
	logger logger.Logger
}

// New returns an analyzer using the wall clock.
func New(log logger.Logger) *Analyzer {
	return NewWithClock(log, time.Now)
}

// NewWithClock returns an analyzer with a fixed clock source.
func NewWithClock(log logger.Logger, now func() time.Time) *Analyzer {
	return &Analyzer{now: now, logger: log}
}

// Analyze derives engagement quality signals for a record.
//
// The quality tier is decided on unrounded ratio and velocity; the
// exported fields carry the rounded values.
func (a *Analyzer) Analyze(record *domain.ContentRecord) domain.EngagementQuality {
	likes := record.ImpressionsLikes
	replies := record.ImpressionsReplies

	ratio := float64(replies) / float64(maxInt(likes, 1))

	isFlamewar := ratio > flamewarRatio && replies > flamewarReplies
	isHighSignal := likes > highSignalLikes && ratio < highSignalRatio
	isEmerging := likes > emergingMinLikes && likes < emergingMaxLikes && ratio < emergingRatio

	// Depth compares total replies against direct children. No child
	// count means depth 1, not replies/1.
	depth := 1.0
	if kids := record.ChildCount(); kids > 0 {
		depth = float64(replies) / float64(kids)
	}

	hoursOld := fallbackHoursOld
	velocity := 0.0
	if published, ok := parseTimestamp(record.PublishedAt); ok {
		hoursOld = a.now().Sub(published).Hours()
		velocity = float64(likes) / math.Max(hoursOld, 1)
	} else if record.PublishedAt != "" && a.logger != nil {
		a.logger.Debug("unparseable published_at",
			logger.String("published_at", record.PublishedAt),
			logger.String("title", record.Title))
	}

	tier := qualityTier(likes, ratio, isFlamewar, velocity)

	return domain.EngagementQuality{
		EngagementRatio: round2(ratio),
		IsFlamewar:      isFlamewar,
		IsHighSignal:    isHighSignal,
		IsEmerging:      isEmerging,
		DiscussionDepth: round2(depth),
		Velocity:        round2(velocity),
		HoursOld:        round1(hoursOld),
		QualityTier:     tier,
	}
}

// qualityTier buckets an item by newsletter worthiness. Rule order is
// significant: flamewar wins over trending even when both hold.
func qualityTier(likes int, ratio float64, isFlamewar bool, velocity float64) string {
	switch {
	case isFlamewar:
		return domain.TierSkipFlamewar
	case velocity > trendingVelocity && likes > trendingLikes:
		return domain.TierTrendingMustInclude
	case likes > highQualityLikes && ratio < highQualityRatio:
		return domain.TierHighQuality
	case likes > goodLikes:
		return domain.TierGood
	case likes > moderateLikes:
		return domain.TierModerate
	default:
		return domain.TierLow
	}
}

func parseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

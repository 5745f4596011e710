// Package curator orchestrates the full curation pipeline: classify,
// filter, score engagement, synthesize editorial copy, rank, then select
// a publish set from the candidate pool. Every step is deterministic for
// a fixed input and clock; only the curated_at timestamp varies between
// runs.
package curator

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jonesrussell/digest-curator/internal/classifier"
	"github.com/jonesrussell/digest-curator/internal/domain"
	"github.com/jonesrussell/digest-curator/internal/editorial"
	"github.com/jonesrussell/digest-curator/internal/engagement"
	"github.com/jonesrussell/digest-curator/internal/logger"
	"github.com/jonesrussell/digest-curator/internal/processor"
	"github.com/jonesrussell/digest-curator/internal/telemetry"
)

// Default curation parameters.
const (
	DefaultMinRelevance = 0.2
	DefaultPoolSize     = 25
	DefaultPublishCount = 8

	// freshnessHours is the age below which a low-tier item may still be
	// published.
	freshnessHours = 4.0
)

// DefaultConfig returns the default curation parameters.
func DefaultConfig() domain.CurationConfig {
	return domain.CurationConfig{
		MinRelevance: DefaultMinRelevance,
		PoolSize:     DefaultPoolSize,
		PublishCount: DefaultPublishCount,
	}
}

// Options carries the non-dependency knobs for a Curator.
type Options struct {
	// Defaults is the config used by Curate; zero fields fall back to
	// the package defaults.
	Defaults domain.CurationConfig
	// Source is echoed into the output document.
	Source string
	// Now overrides the clock, for reproducible output in tests.
	Now func() time.Time
}

// Curator runs the curation pipeline.
type Curator struct {
	classifier  *classifier.Classifier
	analyzer    *engagement.Analyzer
	synthesizer *editorial.Synthesizer
	pool        *processor.Pool
	telemetry   *telemetry.Provider
	logger      logger.Logger

	defaults domain.CurationConfig
	source   string
	now      func() time.Time
}

// New wires a curator from its stage components.
func New(
	cls *classifier.Classifier,
	analyzer *engagement.Analyzer,
	synth *editorial.Synthesizer,
	pool *processor.Pool,
	tel *telemetry.Provider,
	log logger.Logger,
	opts Options,
) *Curator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Curator{
		classifier:  cls,
		analyzer:    analyzer,
		synthesizer: synth,
		pool:        pool,
		telemetry:   tel,
		logger:      log,
		defaults:    normalizeConfig(opts.Defaults),
		source:      opts.Source,
		now:         opts.Now,
	}
}

// Curate runs the pipeline with the curator's default config.
func (c *Curator) Curate(ctx context.Context, records []*domain.ContentRecord) (*domain.CurationOutput, error) {
	return c.CurateWithConfig(ctx, records, c.defaults)
}

// CurateWithConfig runs the pipeline with a per-call config. Zero or
// out-of-range config fields are replaced with defaults.
func (c *Curator) CurateWithConfig(ctx context.Context, records []*domain.ContentRecord, cfg domain.CurationConfig) (*domain.CurationOutput, error) {
	cfg = normalizeConfig(cfg)
	start := time.Now()

	if c.telemetry != nil {
		var span trace.Span
		ctx, span = c.telemetry.StartSpan(ctx, "curator.curate")
		defer span.End()
	}

	outcomes, err := c.pool.Run(ctx, records, c.evaluate(cfg))
	if err != nil {
		return nil, fmt.Errorf("evaluate records: %w", err)
	}

	curated := make([]*domain.CuratedItem, 0, len(outcomes))
	// Buckets marshal as [] rather than null when empty.
	filtered := domain.FilteredOut{
		Noise:            []domain.FilteredRecord{},
		LowRelevance:     []domain.FilteredRecord{},
		Flamewar:         []domain.FilteredRecord{},
		LowQualityHidden: []domain.FilteredRecord{},
	}
	for _, o := range outcomes {
		if o.Item != nil {
			curated = append(curated, o.Item)
			continue
		}
		switch o.Bucket {
		case domain.BucketNoise:
			filtered.Noise = append(filtered.Noise, o.Filtered)
		case domain.BucketFlamewar:
			filtered.Flamewar = append(filtered.Flamewar, o.Filtered)
		case domain.BucketLowRelevance:
			filtered.LowRelevance = append(filtered.LowRelevance, o.Filtered)
		}
	}

	sortCurated(curated)

	pool := curated
	if len(pool) > cfg.PoolSize {
		pool = pool[:cfg.PoolSize]
	}

	published, hidden := c.selectPublished(pool, cfg)
	filtered.LowQualityHidden = hidden

	themes := GroupByTheme(published)

	themeCounts := make(map[string]int, len(themes))
	for theme, items := range themes {
		themeCounts[theme] = len(items)
	}

	output := &domain.CurationOutput{
		SchemaVersion:  domain.SchemaVersion,
		CuratedAt:      c.now().Format(time.RFC3339),
		Source:         c.source,
		CurationConfig: cfg,
		Stats: domain.CurationStats{
			InputItems:           len(records),
			PoolItems:            len(pool),
			PublishedItems:       len(published),
			FilteredNoise:        len(filtered.Noise),
			FilteredLowRelevance: len(filtered.LowRelevance),
			FilteredFlamewar:     len(filtered.Flamewar),
			FilteredLowQuality:   len(filtered.LowQualityHidden),
			Themes:               themeCounts,
		},
		Themes:         themes,
		PublishedItems: published,
		PoolItems:      pool,
		FilteredOut:    filtered,
	}

	duration := time.Since(start)
	if c.telemetry != nil {
		c.telemetry.RecordCuration(ctx, duration, &output.Stats)
	}
	if c.logger != nil {
		c.logger.Info("curation complete",
			logger.Int("input", len(records)),
			logger.Int("pool", len(pool)),
			logger.Int("published", len(published)),
			logger.Int("themes", len(themes)),
			logger.Int("filtered_noise", len(filtered.Noise)),
			logger.Int("filtered_low_relevance", len(filtered.LowRelevance)),
			logger.Int("filtered_flamewar", len(filtered.Flamewar)),
			logger.Int("filtered_low_quality", len(filtered.LowQualityHidden)),
			logger.Int64("duration_ms", duration.Milliseconds()))
	}

	return output, nil
}

// evaluate builds the per-record stage: classify, drop noise, score
// engagement, drop flamewars, drop low relevance, synthesize editorial.
// The filter order is part of the contract: a record that is both noise
// and a flamewar lands in the noise bucket.
func (c *Curator) evaluate(cfg domain.CurationConfig) processor.StageFunc {
	return func(_ context.Context, record *domain.ContentRecord) processor.Outcome {
		classifyStart := time.Now()
		cls := c.classifier.Classify(record)
		if c.telemetry != nil {
			c.telemetry.RecordClassification(time.Since(classifyStart), &cls)
		}

		if cls.IsNoise {
			return processor.Outcome{
				Bucket:   domain.BucketNoise,
				Filtered: domain.FilteredRecord{Title: record.Title, Reason: cls.FilterReason},
			}
		}

		quality := c.analyzer.Analyze(record)
		if quality.QualityTier == domain.TierSkipFlamewar {
			return processor.Outcome{
				Bucket:   domain.BucketFlamewar,
				Filtered: domain.FilteredRecord{Title: record.Title},
			}
		}

		if cls.RelevanceScore < cfg.MinRelevance {
			return processor.Outcome{
				Bucket:   domain.BucketLowRelevance,
				Filtered: domain.FilteredRecord{Title: record.Title},
			}
		}

		ed := c.synthesizer.Synthesize(record, &cls, &quality)

		return processor.Outcome{
			Item: &domain.CuratedItem{
				ContentRecord:  *record,
				Classification: cls,
				Engagement:     quality,
				Editorial:      ed,
			},
		}
	}
}

// sortCurated orders candidates by (must-include tier, priority,
// descending velocity x depth). The sort is stable, so full ties keep
// input order.
func sortCurated(items []*domain.CuratedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, tj := tierRank(items[i]), tierRank(items[j])
		if ti != tj {
			return ti < tj
		}
		pi, pj := items[i].Editorial.NewsletterPriority, items[j].Editorial.NewsletterPriority
		if pi != pj {
			return pi < pj
		}
		return engagementScore(items[i]) > engagementScore(items[j])
	})
}

func tierRank(item *domain.CuratedItem) int {
	if item.Engagement.QualityTier == domain.TierTrendingMustInclude {
		return 0
	}
	return 1
}

func engagementScore(item *domain.CuratedItem) float64 {
	return item.Engagement.Velocity * item.Engagement.DiscussionDepth
}

// selectPublished walks the ranked pool and keeps items until the
// publish count is reached. Low-tier items are hidden unless they are
// fresh or the first item for their topic.
func (c *Curator) selectPublished(pool []*domain.CuratedItem, cfg domain.CurationConfig) ([]*domain.CuratedItem, []domain.FilteredRecord) {
	published := make([]*domain.CuratedItem, 0, cfg.PublishCount)
	hidden := []domain.FilteredRecord{}
	topicCounts := make(map[string]int)

	for _, item := range pool {
		topic := item.Classification.PrimaryTopic
		if topic == "" {
			topic = fallbackTopicName
		}

		if item.Engagement.QualityTier == domain.TierLow {
			isFresh := item.Engagement.HoursOld < freshnessHours
			fillsGap := topicCounts[topic] == 0
			if !isFresh && !fillsGap {
				hidden = append(hidden, domain.FilteredRecord{
					Title: item.Title,
					Reason: fmt.Sprintf("low_quality, %.1fh old, topic '%s' has %d items",
						item.Engagement.HoursOld, topic, topicCounts[topic]),
				})
				continue
			}
		}

		published = append(published, item)
		topicCounts[topic]++

		if len(published) >= cfg.PublishCount {
			break
		}
	}

	return published, hidden
}

func normalizeConfig(cfg domain.CurationConfig) domain.CurationConfig {
	if cfg.MinRelevance <= 0 || cfg.MinRelevance > 1 {
		cfg.MinRelevance = DefaultMinRelevance
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = DefaultPoolSize
	}
	if cfg.PublishCount <= 0 {
		cfg.PublishCount = DefaultPublishCount
	}
	return cfg
}

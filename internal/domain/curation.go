package domain

// SchemaVersion identifies the curated-output document schema expected by
// the downstream rendering layer.
const SchemaVersion = "3.1"

// Filter bucket names used by the orchestrator's funnel.
const (
	BucketNoise            = "noise"
	BucketLowRelevance     = "low_relevance"
	BucketFlamewar         = "flamewar"
	BucketLowQualityHidden = "low_quality_hidden"
)

// CuratedItem is a record that survived the funnel, enriched with its
// classification, engagement quality and editorial content. Created once
// per surviving record and not mutated afterwards.
type CuratedItem struct {
	ContentRecord

	Classification Classification    `json:"classification"`
	Engagement     EngagementQuality `json:"engagement_quality"`
	Editorial      EditorialContent  `json:"editorial"`
}

// FilteredRecord is the minimal audit entry kept for a filtered-out record.
type FilteredRecord struct {
	Title  string `json:"title"`
	Reason string `json:"reason,omitempty"`
}

// FilteredOut collects filtered records per bucket. The bucket set is
// closed and known in advance, so this is a fixed struct rather than a
// dynamically-keyed map.
type FilteredOut struct {
	Noise            []FilteredRecord `json:"noise"`
	LowRelevance     []FilteredRecord `json:"low_relevance"`
	Flamewar         []FilteredRecord `json:"flamewar"`
	LowQualityHidden []FilteredRecord `json:"low_quality_hidden"`
}

// CurationConfig is the configuration snapshot echoed in the output.
type CurationConfig struct {
	MinRelevance float64 `json:"min_relevance"`
	PoolSize     int     `json:"pool_size"`
	PublishCount int     `json:"publish_count"`
}

// CurationStats summarizes one pipeline invocation.
type CurationStats struct {
	InputItems           int            `json:"input_items"`
	PoolItems            int            `json:"pool_items"`
	PublishedItems       int            `json:"published_items"`
	FilteredNoise        int            `json:"filtered_noise"`
	FilteredLowRelevance int            `json:"filtered_low_relevance"`
	FilteredFlamewar     int            `json:"filtered_flamewar"`
	FilteredLowQuality   int            `json:"filtered_low_quality"`
	Themes               map[string]int `json:"themes"`
}

// CurationOutput is the full curated document handed to the persistence
// and rendering layer.
type CurationOutput struct {
	SchemaVersion  string                    `json:"schema_version"`
	CuratedAt      string                    `json:"curated_at"`
	Source         string                    `json:"source"`
	CurationConfig CurationConfig            `json:"curation_config"`
	Stats          CurationStats             `json:"stats"`
	Themes         map[string][]*CuratedItem `json:"themes"`
	PublishedItems []*CuratedItem            `json:"published_items"`
	PoolItems      []*CuratedItem            `json:"pool_items"`
	FilteredOut    FilteredOut               `json:"filtered_out"`
}

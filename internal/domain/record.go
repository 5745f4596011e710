package domain

// ContentRecord represents one normalized content item harvested by the
// collection layer (forum post, social post, long-form article).
// The curation pipeline treats it as read-only and tolerates any field
// being absent or empty.
type ContentRecord struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	URL     string `json:"url,omitempty"`
	Author  string `json:"author,omitempty"`

	// Raw engagement counts from the source platform
	ImpressionsLikes   int `json:"impressions_likes,omitempty"`
	ImpressionsReplies int `json:"impressions_replies,omitempty"`
	ImpressionsViews   int `json:"impressions_views,omitempty"`

	// Metadata holds collector-specific extras (e.g. kids_count for the
	// number of direct replies, hn_url for the discussion page)
	Metadata map[string]any `json:"metadata,omitempty"`

	// PublishedAt is an ISO-8601 timestamp; may be absent or malformed
	PublishedAt string `json:"published_at,omitempty"`
}

// ChildCount returns the direct reply count from metadata, 0 when absent.
// JSON decoding delivers numbers as float64, so both forms are accepted.
func (r *ContentRecord) ChildCount() int {
	if r.Metadata == nil {
		return 0
	}
	switch v := r.Metadata["kids_count"].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// DiscussionURL returns the best link for a record: the source URL when
// present, otherwise the discussion page from metadata.
func (r *ContentRecord) DiscussionURL() string {
	if r.URL != "" {
		return r.URL
	}
	if r.Metadata != nil {
		if u, ok := r.Metadata["hn_url"].(string); ok {
			return u
		}
	}
	return ""
}

package domain

// TopicScore holds per-topic scoring detail for one record.
type TopicScore struct {
	RawScore        int      `json:"raw_score"`
	WeightedScore   float64  `json:"weighted_score"`
	MatchedKeywords []string `json:"matched_keywords"`
	Label           string   `json:"label"`
}

// Classification is the result of classifying one record against the
// topic taxonomy.
//
// Invariant: IsNoise and IsRelevant are never both true; when IsNoise is
// set, RelevanceScore is 0 and PrimaryTopic is empty.
type Classification struct {
	IsRelevant        bool                  `json:"is_relevant"`
	PrimaryTopic      string                `json:"primary_topic,omitempty"`
	PrimaryTopicLabel string                `json:"primary_topic_label,omitempty"`
	AllTopics         []string              `json:"all_topics"`
	TopicDetails      map[string]TopicScore `json:"topic_details,omitempty"`
	RelevanceScore    float64               `json:"relevance_score"`
	IsNoise           bool                  `json:"is_noise"`
	FilterReason      string                `json:"filter_reason,omitempty"`
}

// Filter reason constants for noise classifications.
const (
	ReasonNoKeywordsMatched = "no_ai_keywords_matched"
	reasonNoisePrefix       = "noise_keyword: "
)

// NoiseReason builds the filter reason for a matched noise phrase.
func NoiseReason(phrase string) string {
	return reasonNoisePrefix + phrase
}

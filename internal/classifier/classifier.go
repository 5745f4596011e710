// Package classifier scores content records against the topic taxonomy.
// It uses an Aho-Corasick automaton for O(n+m) keyword matching instead
// of scanning the text once per keyword.
package classifier

import (
	"math"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/jonesrussell/digest-curator/internal/domain"
	"github.com/jonesrussell/digest-curator/internal/logger"
	"github.com/jonesrussell/digest-curator/internal/taxonomy"
)

// relevanceDivisor normalizes the summed weighted score into [0,1].
const relevanceDivisor = 10.0

// topicMapping ties a matched keyword back to its topic.
type topicMapping struct {
	topicIndex   int
	keywordIndex int
}

// Classifier matches records against noise phrases and topic keywords.
// The taxonomy is fixed at construction, so Classify is safe for
// concurrent use without locking.
type Classifier struct {
	taxonomy *taxonomy.Taxonomy

	noiseMatcher *ahocorasick.Matcher
	noisePhrases []string // normalized, in configured order

	topicMatcher *ahocorasick.Matcher
	keywords     []string // deduplicated normalized keywords
	kwToTopics   map[string][]topicMapping

	logger logger.Logger
}

// New builds the keyword automatons from the taxonomy.
func New(tax *taxonomy.Taxonomy, log logger.Logger) *Classifier {
	c := &Classifier{
		taxonomy:   tax,
		kwToTopics: make(map[string][]topicMapping),
		logger:     log,
	}

	c.noisePhrases = make([]string, 0, len(tax.NoiseKeywords))
	for _, phrase := range tax.NoiseKeywords {
		normalized := normalizeKeyword(phrase)
		if normalized == "" {
			continue
		}
		c.noisePhrases = append(c.noisePhrases, normalized)
	}
	if len(c.noisePhrases) > 0 {
		c.noiseMatcher = ahocorasick.NewStringMatcher(c.noisePhrases)
	}

	for ti := range tax.Topics {
		for ki, kw := range tax.Topics[ti].Keywords {
			normalized := normalizeKeyword(kw)
			if normalized == "" {
				continue
			}
			if _, seen := c.kwToTopics[normalized]; !seen {
				c.keywords = append(c.keywords, normalized)
			}
			c.kwToTopics[normalized] = append(c.kwToTopics[normalized], topicMapping{
				topicIndex:   ti,
				keywordIndex: ki,
			})
		}
	}
	if len(c.keywords) > 0 {
		c.topicMatcher = ahocorasick.NewStringMatcher(c.keywords)
	}

	if log != nil {
		log.Info("classifier initialized",
			logger.Int("topics", len(tax.Topics)),
			logger.Int("keywords", len(c.keywords)),
			logger.Int("noise_phrases", len(c.noisePhrases)))
	}

	return c
}

// Classify scores a record against the taxonomy.
//
// Noise phrases are checked first; a noise hit short-circuits topic
// scoring. Keyword matching is plain substring containment on the
// lowercased text, so "ai" inside "maintain" counts. Title hits score 2,
// body-only hits score 1.
func (c *Classifier) Classify(record *domain.ContentRecord) domain.Classification {
	title := strings.ToLower(record.Title)
	body := strings.ToLower(record.Content)
	text := title + " " + body

	if phrase, ok := c.firstNoisePhrase(text); ok {
		return domain.Classification{
			IsNoise:      true,
			AllTopics:    []string{},
			FilterReason: domain.NoiseReason(phrase),
		}
	}

	textHits := c.matchSet(text)
	titleHits := c.matchSet(title)

	details := make(map[string]domain.TopicScore)
	allTopics := make([]string, 0, len(c.taxonomy.Topics))

	primaryTopic := ""
	primaryLabel := ""
	primaryWeighted := 0.0
	totalWeighted := 0.0

	// Topics are scored in configured order so that weighted-score ties
	// resolve to the earlier topic.
	for i := range c.taxonomy.Topics {
		topic := &c.taxonomy.Topics[i]

		score := 0
		var matched []string
		for _, kw := range topic.Keywords {
			normalized := normalizeKeyword(kw)
			if !textHits[normalized] {
				continue
			}
			if titleHits[normalized] {
				score += 2
			} else {
				score++
			}
			matched = append(matched, kw)
		}
		if score == 0 {
			continue
		}

		weighted := float64(score) * topic.Weight
		details[topic.ID] = domain.TopicScore{
			RawScore:        score,
			WeightedScore:   weighted,
			MatchedKeywords: matched,
			Label:           topic.Label,
		}
		allTopics = append(allTopics, topic.ID)
		totalWeighted += weighted

		if weighted > primaryWeighted {
			primaryWeighted = weighted
			primaryTopic = topic.ID
			primaryLabel = topic.Label
		}
	}

	if len(details) == 0 {
		return domain.Classification{
			IsNoise:      true,
			AllTopics:    []string{},
			FilterReason: domain.ReasonNoKeywordsMatched,
		}
	}

	relevance := math.Min(totalWeighted/relevanceDivisor, 1.0)

	return domain.Classification{
		IsRelevant:        true,
		PrimaryTopic:      primaryTopic,
		PrimaryTopicLabel: primaryLabel,
		AllTopics:         allTopics,
		TopicDetails:      details,
		RelevanceScore:    round2(relevance),
	}
}

// firstNoisePhrase returns the earliest configured noise phrase contained
// in text. The automaton reports hits in arbitrary order, so the minimum
// pattern index is taken to keep the reported phrase deterministic.
func (c *Classifier) firstNoisePhrase(text string) (string, bool) {
	if c.noiseMatcher == nil {
		return "", false
	}
	hits := c.noiseMatcher.Match([]byte(text))
	if len(hits) == 0 {
		return "", false
	}
	first := hits[0]
	for _, h := range hits[1:] {
		if h < first {
			first = h
		}
	}
	return c.noisePhrases[first], true
}

// matchSet returns the set of keywords contained in text.
func (c *Classifier) matchSet(text string) map[string]bool {
	set := make(map[string]bool)
	if c.topicMatcher == nil {
		return set
	}
	for _, hit := range c.topicMatcher.Match([]byte(text)) {
		if hit < len(c.keywords) {
			set[c.keywords[hit]] = true
		}
	}
	return set
}

// KeywordCount returns the number of distinct topic keywords.
func (c *Classifier) KeywordCount() int {
	return len(c.keywords)
}

func normalizeKeyword(kw string) string {
	return strings.ToLower(strings.TrimSpace(kw))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

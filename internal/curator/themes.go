package curator

import (
	"sort"

	"github.com/jonesrussell/digest-curator/internal/domain"
)

// Newsletter section labels. Several topics share a section, so this is
// a many-to-one mapping distinct from the topic labels themselves.
const (
	sectionAILLMs     = "AI & LLMs"
	sectionInfra      = "AI Infrastructure"
	sectionProducts   = "AI Products & Startups"
	sectionEthics     = "AI Ethics & Policy"
	sectionDevTools   = "Developer Tools"
	sectionIndustry   = "Tech Industry News"
	sectionOther      = "Other Notable"
	fallbackTopicName = "other"
)

// SectionFor maps a primary topic id to its newsletter section.
func SectionFor(topic string) string {
	switch topic {
	case "llm", "ml_research":
		return sectionAILLMs
	case "ai_infra":
		return sectionInfra
	case "ai_product":
		return sectionProducts
	case "ai_ethics":
		return sectionEthics
	case "developer_tools":
		return sectionDevTools
	case "tech_industry":
		return sectionIndustry
	default:
		return sectionOther
	}
}

// GroupByTheme buckets items into newsletter sections and sorts each
// section by ascending priority. The sort is stable, so items with equal
// priority keep their curated order.
func GroupByTheme(items []*domain.CuratedItem) map[string][]*domain.CuratedItem {
	themes := make(map[string][]*domain.CuratedItem)
	for _, item := range items {
		section := SectionFor(item.Classification.PrimaryTopic)
		themes[section] = append(themes[section], item)
	}

	for _, sectionItems := range themes {
		sort.SliceStable(sectionItems, func(i, j int) bool {
			return sectionItems[i].Editorial.NewsletterPriority < sectionItems[j].Editorial.NewsletterPriority
		})
	}
	return themes
}

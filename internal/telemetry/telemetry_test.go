package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/jonesrussell/digest-curator/internal/domain"
)

// A single shared provider: promauto registers on the default registry,
// so constructing a second provider in the same process would panic.
var provider = NewProvider()

func TestProviderHandler(t *testing.T) {
	if provider.Handler() == nil {
		t.Fatal("expected metrics handler")
	}
}

func TestRecordCuration(t *testing.T) {
	stats := &domain.CurationStats{
		InputItems:           10,
		PoolItems:            5,
		PublishedItems:       3,
		FilteredNoise:        2,
		FilteredLowRelevance: 1,
		FilteredFlamewar:     1,
		FilteredLowQuality:   1,
		Themes:               map[string]int{"AI & LLMs": 3},
	}

	ctx, span := provider.StartSpan(context.Background(), "test")
	defer span.End()

	// Must not panic on a fully populated stats block.
	provider.RecordCuration(ctx, 25*time.Millisecond, stats)
}

func TestRecordClassification(t *testing.T) {
	provider.RecordClassification(time.Millisecond, &domain.Classification{
		IsRelevant:   true,
		PrimaryTopic: "llm",
	})
	provider.RecordClassification(time.Millisecond, &domain.Classification{
		IsNoise:      true,
		FilterReason: "noise_keyword: grammar",
	})
}

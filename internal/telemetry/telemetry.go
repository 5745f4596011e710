// Package telemetry provides OpenTelemetry instrumentation for the
// curation service. It exports Prometheus metrics and provides tracing
// capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonesrussell/digest-curator/internal/domain"
)

const serviceName = "curator"

// Metrics holds all curator Prometheus metrics
type Metrics struct {
	// Pipeline metrics
	RecordsIngested  prometheus.Counter
	RecordsFiltered  *prometheus.CounterVec
	RecordsPublished prometheus.Counter
	CurationDuration prometheus.Histogram
	BatchSize        prometheus.Histogram

	// Classification metrics
	ClassifyDuration prometheus.Histogram
	NoiseHits        prometheus.Counter
	TopicMatched     *prometheus.CounterVec

	// Theme distribution of published items
	ThemeItems *prometheus.CounterVec
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

// StartSpan starts a trace span; the caller must End it.
func (p *Provider) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return p.Tracer.Start(ctx, name)
}

// RecordCuration records one full pipeline run.
func (p *Provider) RecordCuration(ctx context.Context, duration time.Duration, stats *domain.CurationStats) {
	if p.Metrics == nil {
		return
	}

	p.Metrics.RecordsIngested.Add(float64(stats.InputItems))
	p.Metrics.RecordsPublished.Add(float64(stats.PublishedItems))
	p.Metrics.CurationDuration.Observe(duration.Seconds())
	p.Metrics.BatchSize.Observe(float64(stats.InputItems))

	p.Metrics.RecordsFiltered.WithLabelValues(domain.BucketNoise).Add(float64(stats.FilteredNoise))
	p.Metrics.RecordsFiltered.WithLabelValues(domain.BucketLowRelevance).Add(float64(stats.FilteredLowRelevance))
	p.Metrics.RecordsFiltered.WithLabelValues(domain.BucketFlamewar).Add(float64(stats.FilteredFlamewar))
	p.Metrics.RecordsFiltered.WithLabelValues(domain.BucketLowQualityHidden).Add(float64(stats.FilteredLowQuality))

	for theme, count := range stats.Themes {
		p.Metrics.ThemeItems.WithLabelValues(theme).Add(float64(count))
	}

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.Int("curation.input_items", stats.InputItems),
		attribute.Int("curation.pool_items", stats.PoolItems),
		attribute.Int("curation.published_items", stats.PublishedItems),
	)
}

// RecordClassification records one classifier invocation.
func (p *Provider) RecordClassification(duration time.Duration, cls *domain.Classification) {
	if p.Metrics == nil {
		return
	}

	p.Metrics.ClassifyDuration.Observe(duration.Seconds())
	if cls.IsNoise {
		p.Metrics.NoiseHits.Inc()
		return
	}
	if cls.PrimaryTopic != "" {
		p.Metrics.TopicMatched.WithLabelValues(cls.PrimaryTopic).Inc()
	}
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initPipelineMetrics(m)
	initClassificationMetrics(m)
	return m
}

func initPipelineMetrics(m *Metrics) {
	m.RecordsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "curator_records_ingested_total",
		Help: "Total raw records fed into the curation pipeline",
	})

	m.RecordsFiltered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "curator_records_filtered_total",
		Help: "Total records filtered out, by funnel bucket",
	}, []string{"bucket"})

	m.RecordsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "curator_records_published_total",
		Help: "Total records selected for publication",
	})

	m.CurationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "curator_curation_duration_seconds",
		Help:    "End-to-end duration of one curation run",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
	})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "curator_batch_size",
		Help:    "Number of records per curation run",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500},
	})

	m.ThemeItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "curator_theme_items_total",
		Help: "Published items per newsletter theme",
	}, []string{"theme"})
}

func initClassificationMetrics(m *Metrics) {
	m.ClassifyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "curator_classify_duration_seconds",
		Help:    "Time spent classifying a single record",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
	})

	m.NoiseHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "curator_noise_hits_total",
		Help: "Records rejected by a noise phrase or zero keyword matches",
	})

	m.TopicMatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "curator_topic_matched_total",
		Help: "Relevant records by primary topic",
	}, []string{"topic"})
}

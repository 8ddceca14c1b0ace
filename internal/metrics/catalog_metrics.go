package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CatalogMetrics holds the counters and histograms the catalog service
// exposes on /metrics.
type CatalogMetrics struct {
	productsCreated prometheus.Counter
	productsDeleted prometheus.Counter
	writesFailed    *prometheus.CounterVec

	requestDuration *prometheus.HistogramVec

	outboxPublished prometheus.Counter
	outboxFailed    prometheus.Counter
	outboxPending   prometheus.Gauge
}

// NewCatalogMetrics registers against the default registerer.
func NewCatalogMetrics() *CatalogMetrics {
	return NewCatalogMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewCatalogMetricsWithRegisterer lets tests pass an isolated registry.
func NewCatalogMetricsWithRegisterer(registerer prometheus.Registerer) *CatalogMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CatalogMetrics{
		productsCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "catalog_products_created_total",
			Help: "Total number of products created",
		}),
		productsDeleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "catalog_products_deleted_total",
			Help: "Total number of products soft-deleted",
		}),
		writesFailed: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "catalog_writes_failed_total",
			Help: "Total number of failed write usecases",
		}, []string{"usecase"}),
		requestDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		outboxPublished: registerCounter(registerer, prometheus.CounterOpts{
			Name: "catalog_outbox_published_total",
			Help: "Total number of outbox events published to the broker",
		}),
		outboxFailed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "catalog_outbox_publish_failures_total",
			Help: "Total number of outbox publish attempts that failed",
		}),
		outboxPending: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "catalog_outbox_pending",
			Help: "Number of outbox events seen pending on the last relay poll",
		}),
	}
}

func (m *CatalogMetrics) RecordProductCreated() { m.productsCreated.Inc() }
func (m *CatalogMetrics) RecordProductDeleted() { m.productsDeleted.Inc() }
func (m *CatalogMetrics) RecordWriteFailed(usecase string) {
	m.writesFailed.WithLabelValues(usecase).Inc()
}

func (m *CatalogMetrics) RecordRequestDuration(method, route string, d time.Duration) {
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *CatalogMetrics) RecordOutboxPublished()     { m.outboxPublished.Inc() }
func (m *CatalogMetrics) RecordOutboxPublishFailed() { m.outboxFailed.Inc() }
func (m *CatalogMetrics) SetOutboxPending(n int)     { m.outboxPending.Set(float64(n)) }

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

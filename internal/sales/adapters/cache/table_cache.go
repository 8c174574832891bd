package cache

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"

	"sales-dashboard-service/internal/sales/core/domain"
	"sales-dashboard-service/internal/sales/core/ports"
)

const tableKey = "sales"

// Loader builds a complete table. It is only called on a miss.
type Loader func(ctx context.Context) (*domain.Table, error)

type Config struct {
	TTL          time.Duration
	LoadTimeout  time.Duration // 0 disables the timeout
	MetricPrefix string
}

// TableCache keeps the last derived table for TTL and reloads it lazily
// on the first access after expiry. Readers only ever see fully built
// tables; concurrent misses share one load.
type TableCache struct {
	load    Loader
	cfg     Config
	entries *expirable.LRU[string, *domain.Table]
	group   singleflight.Group
	logger  log.Logger

	hits         prometheus.Counter
	misses       prometheus.Counter
	loadFailures prometheus.Counter
	loadDuration prometheus.Histogram
}

var _ ports.TableSourcePort = (*TableCache)(nil)

func NewTableCache(load Loader, cfg Config, reg prometheus.Registerer, logger log.Logger) *TableCache {
	if cfg.MetricPrefix == "" {
		cfg.MetricPrefix = "sales_table_cache"
	}

	c := &TableCache{
		load:    load,
		cfg:     cfg,
		entries: expirable.NewLRU[string, *domain.Table](1, nil, cfg.TTL),
		logger:  logger,
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: cfg.MetricPrefix + "_hits_total",
			Help: "Table lookups served from cache.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: cfg.MetricPrefix + "_misses_total",
			Help: "Table lookups that required a load.",
		}),
		loadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: cfg.MetricPrefix + "_load_failures_total",
			Help: "Table loads that returned an error.",
		}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    cfg.MetricPrefix + "_load_duration_seconds",
			Help:    "Duration of table loads.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	if reg != nil {
		reg.MustRegister(c.hits, c.misses, c.loadFailures, c.loadDuration)
	}
	return c
}

func (c *TableCache) Table(ctx context.Context) (*domain.Table, error) {
	if t, ok := c.entries.Get(tableKey); ok {
		c.hits.Inc()
		return t, nil
	}
	c.misses.Inc()

	v, err, shared := c.group.Do(tableKey, func() (any, error) {
		// Another caller may have published while we queued.
		if t, ok := c.entries.Get(tableKey); ok {
			return t, nil
		}
		return c.loadAndPublish(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		level.Debug(c.logger).Log("msg", "shared in-flight table load")
	}
	return v.(*domain.Table), nil
}

// Invalidate drops the cached table; the next access reloads.
func (c *TableCache) Invalidate() {
	c.entries.Purge()
}

func (c *TableCache) loadAndPublish(ctx context.Context) (*domain.Table, error) {
	// Shared by every waiting caller: detached from the first caller's
	// cancellation, bounded by LoadTimeout instead.
	loadCtx := context.WithoutCancel(ctx)
	if c.cfg.LoadTimeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(loadCtx, c.cfg.LoadTimeout)
		defer cancel()
	}

	start := time.Now()
	t, err := c.load(loadCtx)
	c.loadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.loadFailures.Inc()
		return nil, err
	}

	c.entries.Add(tableKey, t)
	level.Info(c.logger).Log("msg", "sales table loaded", "rows", t.Len(), "duration", time.Since(start))
	return t, nil
}

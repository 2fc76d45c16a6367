package calendar

import (
	"context"
	"sync"
	"time"

	"github.com/username/holiday-calendar/internal/metrics"
	"go.uber.org/zap"
)

// DefaultMinYear is the earliest year any provider publishes
const DefaultMinYear = 2002

// Resolver implements Calendar on top of a persisted store and a remote
// fetcher. It owns the decision of when to touch the network.
type Resolver struct {
	store      Store
	fetcher    Fetcher
	normalizer *Normalizer
	minYear    int
	now        func() time.Time
	metrics    *metrics.Metrics
	logger     *zap.Logger

	mu    sync.Mutex
	years map[int]*yearEntry
}

// yearEntry resolves one year at most once; concurrent callers for the same
// year wait on once, other years are not blocked.
type yearEntry struct {
	once sync.Once
	c    *Classification
	keep bool
}

// NewResolver creates a new Resolver
func NewResolver(store Store, fetcher Fetcher, minYear int, m *metrics.Metrics, logger *zap.Logger) *Resolver {
	if minYear <= 0 {
		minYear = DefaultMinYear
	}

	return &Resolver{
		store:      store,
		fetcher:    fetcher,
		normalizer: NewNormalizer(logger),
		minYear:    minYear,
		now:        time.Now,
		metrics:    m,
		logger:     logger,
		years:      make(map[int]*yearEntry),
	}
}

// InRange reports whether year may be fetched from the network
func (r *Resolver) InRange(year int) bool {
	return year >= r.minYear && year <= r.now().Year()
}

// Resolve returns the classification for year.
//
// Lookup order: in-process memo, persisted store, then the remote sources
// for years in [minYear, current year]. Out-of-range years and years for
// which every source failed are never persisted.
//
// The remote fetch is not tied to ctx cancellation: a caller that goes away
// must not turn a healthy year into a memoised failure.
func (r *Resolver) Resolve(ctx context.Context, year int) *Classification {
	r.mu.Lock()
	entry, ok := r.years[year]
	if !ok {
		entry = &yearEntry{}
		r.years[year] = entry
	}
	r.mu.Unlock()

	ran := false
	entry.once.Do(func() {
		ran = true
		entry.c, entry.keep = r.resolve(context.WithoutCancel(ctx), year)
	})

	if !ran {
		r.metrics.Resolution("memory")
		return entry.c
	}

	if !entry.keep {
		r.mu.Lock()
		if r.years[year] == entry {
			delete(r.years, year)
		}
		r.mu.Unlock()
	}

	return entry.c
}

// resolve consults the store and the network. keep reports whether the
// result may be memoised.
func (r *Resolver) resolve(ctx context.Context, year int) (c *Classification, keep bool) {
	if r.store.Has(year) {
		c, err := r.store.Read(year)
		if err == nil {
			r.metrics.Resolution("store")
			return c, true
		}
		r.metrics.StoreError()
		r.logger.Error("Cache entry unreadable, resolving again",
			zap.Int("year", year),
			zap.Error(err))
	}

	if !r.InRange(year) {
		r.metrics.Resolution("out_of_range")
		r.logger.Debug("Year outside fetchable range",
			zap.Int("year", year),
			zap.Int("min_year", r.minYear))
		return NewClassification(year), false
	}

	payload := r.fetcher.Fetch(ctx, year)
	c = r.normalizer.Normalize(year, payload)

	if payload.Kind == PayloadEmpty {
		r.metrics.Resolution("unavailable")
	} else {
		r.metrics.Resolution("remote")
		if err := r.store.Write(c); err != nil {
			r.metrics.StoreError()
			r.logger.Error("Failed to persist cache entry",
				zap.Int("year", year),
				zap.Error(err))
		}
	}

	r.logger.Info("Year resolved",
		zap.Int("year", year),
		zap.Int("holidays", len(c.Holidays)),
		zap.Int("makeup_workdays", len(c.MakeupWorkdays)))

	return c, true
}

// Forget drops year from the in-process memo so the next Resolve consults
// the store and, if needed, the network again
func (r *Resolver) Forget(year int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.years, year)
	r.logger.Info("Year dropped from memory cache", zap.Int("year", year))
}

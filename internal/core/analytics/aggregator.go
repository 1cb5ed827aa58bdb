package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/metrics"
)

// TopPerformersLimit is the number of products returned by GetTopPerformers.
const TopPerformersLimit = 5

// Aggregator computes dashboard analytics on top of a Source.
type Aggregator struct {
	source Source
	loc    *time.Location
	now    func() time.Time
}

// NewAggregator creates a new aggregator. Windows are anchored on calendar
// days in loc.
func NewAggregator(source Source, loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &Aggregator{source: source, loc: loc, now: time.Now}
}

// WithClock replaces the wall clock used to anchor windows.
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	a.now = now
	return a
}

// Resolve normalizes a period token and returns its day count. An empty
// token selects DefaultPeriod silently; an unrecognized one also selects it
// but is logged and counted.
func (a *Aggregator) Resolve(token string) (string, int) {
	if token == "" {
		return DefaultPeriod, DefaultDays
	}
	if !IsKnownPeriod(token) {
		log.Warn().Str("period", token).Str("fallback", DefaultPeriod).Msg("unknown period token, using default window")
		metrics.PeriodFallbacks.Inc()
		return DefaultPeriod, DefaultDays
	}
	return token, ResolvePeriod(token)
}

func (a *Aggregator) windows(days int) (Window, Window) {
	return Windows(a.now().In(a.loc), days)
}

// GetKPIs computes the KPI snapshot for the period and its comparison window.
func (a *Aggregator) GetKPIs(ctx context.Context, period string) (*KPISnapshot, error) {
	period, days := a.Resolve(period)
	return a.kpis(ctx, period, days)
}

func (a *Aggregator) kpis(ctx context.Context, period string, days int) (*KPISnapshot, error) {
	current, previous := a.windows(days)

	agg, err := a.source.AggregateWindows(ctx, current, previous)
	if err != nil {
		return nil, fmt.Errorf("aggregate kpi windows: %w", err)
	}

	snapshot := DeriveKPIs(agg)
	snapshot.Period = period
	snapshot.Days = days
	return &snapshot, nil
}

// GetSalesOverTime returns daily completed sales for the current window of
// the period. The result is never nil.
func (a *Aggregator) GetSalesOverTime(ctx context.Context, period string) ([]SalesBucket, error) {
	_, days := a.Resolve(period)
	return a.salesOverTime(ctx, days)
}

func (a *Aggregator) salesOverTime(ctx context.Context, days int) ([]SalesBucket, error) {
	current, _ := a.windows(days)

	buckets, err := a.source.SalesByDay(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}
	if buckets == nil {
		buckets = []SalesBucket{}
	}
	return buckets, nil
}

// GetTopPerformers returns the best selling products of all time.
func (a *Aggregator) GetTopPerformers(ctx context.Context) ([]TopPerformer, error) {
	rows, err := a.source.TopProducts(ctx, TopPerformersLimit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}

	performers := make([]TopPerformer, 0, len(rows))
	for _, row := range rows {
		performers = append(performers, NewTopPerformer(row))
	}
	return performers, nil
}

// GetDashboard loads the KPI snapshot, sales series and top performers
// concurrently and renders them as stat cards and charts.
func (a *Aggregator) GetDashboard(ctx context.Context, period string) (*Dashboard, error) {
	period, days := a.Resolve(period)

	var (
		snapshot *KPISnapshot
		buckets  []SalesBucket
		top      []TopPerformer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot, err = a.kpis(gctx, period, days)
		return err
	})
	g.Go(func() error {
		var err error
		buckets, err = a.salesOverTime(gctx, days)
		return err
	})
	g.Go(func() error {
		var err error
		top, err = a.GetTopPerformers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Dashboard{
		Period:           snapshot.Period,
		Days:             snapshot.Days,
		Cards:            ToStatCards(*snapshot),
		SalesChart:       ToSalesLineChart(buckets),
		TopProductsChart: ToTopPerformersBarChart(top),
	}, nil
}

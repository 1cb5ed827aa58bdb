package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/core/export"
)

type AnalyticsService struct {
	aggregator *analytics.Aggregator
	exporter   *export.Service
	now        func() time.Time
}

func NewAnalyticsService(aggregator *analytics.Aggregator, exporter *export.Service) *AnalyticsService {
	return &AnalyticsService{
		aggregator: aggregator,
		exporter:   exporter,
		now:        time.Now,
	}
}

// GetKPIs returns the KPI snapshot for a period token
func (s *AnalyticsService) GetKPIs(ctx context.Context, period string) (*analytics.KPISnapshot, error) {
	return s.aggregator.GetKPIs(ctx, period)
}

// GetSalesOverTime returns the sparse daily sales series for a period token
func (s *AnalyticsService) GetSalesOverTime(ctx context.Context, period string) ([]analytics.SalesBucket, error) {
	return s.aggregator.GetSalesOverTime(ctx, period)
}

// GetTopPerformers returns the five best selling products of all time
func (s *AnalyticsService) GetTopPerformers(ctx context.Context) ([]analytics.TopPerformer, error) {
	return s.aggregator.GetTopPerformers(ctx)
}

// GetDashboard returns stat cards and the sales chart for a period token
func (s *AnalyticsService) GetDashboard(ctx context.Context, period string) (*analytics.Dashboard, error) {
	return s.aggregator.GetDashboard(ctx, period)
}

// BuildReport renders the KPI report for a period in the requested format.
func (s *AnalyticsService) BuildReport(ctx context.Context, period string, format export.Format) (*export.File, error) {
	var (
		snapshot *analytics.KPISnapshot
		sales    []analytics.SalesBucket
		top      []analytics.TopPerformer
	)

	period, _ = s.aggregator.Resolve(period)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snapshot, err = s.aggregator.GetKPIs(gctx, period)
		return err
	})
	g.Go(func() (err error) {
		sales, err = s.aggregator.GetSalesOverTime(gctx, period)
		return err
	})
	g.Go(func() (err error) {
		top, err = s.aggregator.GetTopPerformers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := export.BuildKPIReport(snapshot, sales, top, s.now())
	file, err := s.exporter.Render(report, format)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	file.Name = fmt.Sprintf("analytics-%s%s", period, file.Extension)
	return file, nil
}

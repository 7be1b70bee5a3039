package services

import (
	"fmt"
	"time"

	"rentfolio/internal/analytics"
	apperrors "rentfolio/internal/errors"
)

// DashboardOptions sizes the windows of the overview.
type DashboardOptions struct {
	IncomeMonths int
	RecentLimit  int
}

// dashboardService loads the portfolio through the record services and
// derives every dashboard figure from the analytics package.
type dashboardService struct {
	propertyService    PropertyServicer
	tenantService      TenantServicer
	transactionService TransactionServicer
	activityService    ActivityServicer
	opts               DashboardOptions
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(
	propertyService PropertyServicer,
	tenantService TenantServicer,
	transactionService TransactionServicer,
	activityService ActivityServicer,
	opts DashboardOptions,
) DashboardServicer {
	if opts.IncomeMonths <= 0 {
		opts.IncomeMonths = 12
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = 4
	}
	return &dashboardService{
		propertyService:    propertyService,
		tenantService:      tenantService,
		transactionService: transactionService,
		activityService:    activityService,
		opts:               opts,
	}
}

// dataset loads properties, tenants and transactions. Activities are only
// loaded when withActivities is set.
func (s *dashboardService) dataset(withActivities bool) (analytics.Dataset, error) {
	var (
		ds  analytics.Dataset
		err error
	)
	if ds.Properties, err = s.propertyService.AllProperties(); err != nil {
		return ds, err
	}
	if ds.Tenants, err = s.tenantService.AllTenants(); err != nil {
		return ds, err
	}
	if ds.Transactions, err = s.transactionService.AllTransactions(); err != nil {
		return ds, err
	}
	if !withActivities {
		return ds, nil
	}
	if ds.Activities, err = s.activityService.AllActivities(); err != nil {
		return ds, err
	}
	return ds, nil
}

// Summary returns the portfolio headline figures.
func (s *dashboardService) Summary() (*analytics.PortfolioSummary, error) {
	ds, err := s.dataset(false)
	if err != nil {
		return nil, err
	}
	summary := analytics.Summarize(ds.Properties, ds.Tenants, ds.Transactions)
	return &summary, nil
}

// Trends compares the month of now with the month before.
func (s *dashboardService) Trends(now time.Time) (*analytics.Trends, error) {
	ds, err := s.dataset(false)
	if err != nil {
		return nil, err
	}
	trends := analytics.ComputeTrends(ds, now)
	return &trends, nil
}

// Distribution splits the portfolio by the named partition.
func (s *dashboardService) Distribution(partition analytics.Partition) ([]analytics.Share, error) {
	ds, err := s.dataset(false)
	if err != nil {
		return nil, err
	}
	shares, ok := analytics.Distribution(partition, ds)
	if !ok {
		return nil, apperrors.ErrUnknownPartition
	}
	return shares, nil
}

// IncomeSeries returns monthly income and expenses for every month from
// from to to inclusive.
func (s *dashboardService) IncomeSeries(from, to analytics.Month) (*analytics.IncomeSeries, error) {
	if to.Before(from) {
		return nil, apperrors.ErrInvalidDateRange
	}
	if analytics.MonthsBetween(from, to) > analytics.MaxSeriesMonths {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidDateRange,
			fmt.Sprintf("Range must span at most %d months", analytics.MaxSeriesMonths))
	}
	transactions, err := s.transactionService.AllTransactions()
	if err != nil {
		return nil, err
	}
	series := analytics.MonthlySeries(transactions, analytics.MonthRange(from, to))
	return &series, nil
}

// RecentActivity returns the newest feed entries with property names.
func (s *dashboardService) RecentActivity(limit int) ([]analytics.FeedEntry, error) {
	if limit <= 0 {
		limit = s.opts.RecentLimit
	}
	ds, err := s.dataset(true)
	if err != nil {
		return nil, err
	}
	return analytics.Feed(ds.Activities, limit, analytics.NewDirectory(ds.Properties, ds.Tenants)), nil
}

// PropertyPerformance returns per-property statistics.
func (s *dashboardService) PropertyPerformance() ([]analytics.PropertyStats, error) {
	ds, err := s.dataset(false)
	if err != nil {
		return nil, err
	}
	return analytics.PropertyPerformance(ds), nil
}

// Overview computes every dashboard figure from one load of the portfolio.
func (s *dashboardService) Overview(now time.Time) (*Overview, error) {
	ds, err := s.dataset(true)
	if err != nil {
		return nil, err
	}

	distributions := make(map[string][]analytics.Share, len(analytics.Partitions))
	for _, p := range analytics.Partitions {
		shares, _ := analytics.Distribution(p, ds)
		distributions[string(p)] = shares
	}

	return &Overview{
		Summary:       analytics.Summarize(ds.Properties, ds.Tenants, ds.Transactions),
		Trends:        analytics.ComputeTrends(ds, now),
		Distributions: distributions,
		Income:        analytics.MonthlySeries(ds.Transactions, analytics.LastMonths(now, s.opts.IncomeMonths)),
		Activities:    analytics.Feed(ds.Activities, s.opts.RecentLimit, analytics.NewDirectory(ds.Properties, ds.Tenants)),
		Properties:    analytics.PropertyPerformance(ds),
	}, nil
}

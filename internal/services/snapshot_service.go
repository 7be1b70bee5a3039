package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/models"
	"rentfolio/internal/pagination"
)

// snapshotService handles monthly summary snapshots.
type snapshotService struct {
	db               *gorm.DB
	dashboardService DashboardServicer
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB, dashboardService DashboardServicer) SnapshotServicer {
	return &snapshotService{db: db, dashboardService: dashboardService}
}

// MonthStart returns midnight UTC on the first day of the month of t.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// RecordSnapshot stores the current portfolio summary under the month of
// at, replacing an earlier snapshot of the same month.
func (s *snapshotService) RecordSnapshot(at time.Time) (*models.SummarySnapshot, error) {
	summary, err := s.dashboardService.Summary()
	if err != nil {
		return nil, err
	}

	recordedAt := MonthStart(at)
	snapshot := &models.SummarySnapshot{
		RecordedAt:      recordedAt,
		TotalProperties: summary.TotalProperties,
		TotalUnits:      summary.TotalUnits,
		TotalTenants:    summary.TotalTenants,
		RentIncome:      summary.RentIncome,
		Expenses:        summary.Expenses,
		NetIncome:       summary.NetIncome,
		OccupancyRate:   summary.OccupancyRate,
	}

	var existing models.SummarySnapshot
	result := s.db.Where("recorded_at = ?", recordedAt).First(&existing)
	if result.Error == nil {
		if err := s.db.Model(&existing).Updates(map[string]interface{}{
			"total_properties": snapshot.TotalProperties,
			"total_units":      snapshot.TotalUnits,
			"total_tenants":    snapshot.TotalTenants,
			"rent_income":      snapshot.RentIncome,
			"expenses":         snapshot.Expenses,
			"net_income":       snapshot.NetIncome,
			"occupancy_rate":   snapshot.OccupancyRate,
		}).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		snapshot.ID = existing.ID
		return snapshot, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}

	if err := s.db.Create(snapshot).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snapshot, nil
}

// GetSnapshots retrieves snapshots within an optional date range, oldest first.
func (s *snapshotService) GetSnapshots(from, to *time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.SummarySnapshot], error) {
	page.Defaults()

	base := s.db.Model(&models.SummarySnapshot{})
	if from != nil {
		base = base.Where("recorded_at >= ?", *from)
	}
	if to != nil {
		base = base.Where("recorded_at <= ?", *to)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snapshots []models.SummarySnapshot
	if err := base.Scopes(pagination.Paginate(page)).
		Order("recorded_at ASC").
		Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(snapshots, page.Page, page.PageSize, totalItems)
	return &result, nil
}

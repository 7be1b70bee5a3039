package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/logger"
	"rentfolio/internal/models"
)

// Feed descriptions recorded by the services.
const (
	DescLeaseSigned        = "New lease signed"
	DescPaymentReceived    = "Rent payment received"
	DescMaintenanceRequest = "Maintenance request"
	DescPropertyAdded      = "Property added"
)

// activityService appends entries to the activity feed.
type activityService struct {
	db *gorm.DB
}

// NewActivityService creates a new ActivityServicer.
func NewActivityService(db *gorm.DB) ActivityServicer {
	return &activityService{db: db}
}

// Record appends a feed entry. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *activityService) Record(kind models.ActivityKind, description, propertyID string, at time.Time) {
	if at.IsZero() {
		at = time.Now()
	}
	entry := &models.Activity{
		Kind:        kind,
		Description: description,
		PropertyID:  propertyID,
		OccurredAt:  at,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.For("activity").Errorw("failed to record activity",
			"error", err,
			"kind", kind,
			"property_id", propertyID,
		)
	}
}

// AllActivities returns every feed entry in insertion order.
func (s *activityService) AllActivities() ([]models.Activity, error) {
	var activities []models.Activity
	if err := s.db.Order("created_at ASC, id ASC").Find(&activities).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return activities, nil
}

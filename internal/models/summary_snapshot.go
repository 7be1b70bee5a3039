package models

import (
	"time"

	"gorm.io/gorm"
)

// SummarySnapshot is a point-in-time copy of the portfolio summary.
// One row per calendar month, keyed by RecordedAt at the first of the month.
// No Base embed and no soft deletes.
type SummarySnapshot struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	RecordedAt      time.Time `gorm:"not null;uniqueIndex" json:"recorded_at"`
	TotalProperties int       `gorm:"not null" json:"total_properties"`
	TotalUnits      int       `gorm:"not null" json:"total_units"`
	TotalTenants    int       `gorm:"not null" json:"total_tenants"`
	RentIncome      int64     `gorm:"type:bigint;not null" json:"rent_income"`
	Expenses        int64     `gorm:"type:bigint;not null" json:"expenses"`
	NetIncome       int64     `gorm:"type:bigint;not null" json:"net_income"`
	OccupancyRate   *float64  `json:"occupancy_rate"`
}

// BeforeCreate hook assigns a UUIDv7 to new snapshots.
func (s *SummarySnapshot) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	return nil
}

package models

import "time"

// TenantStatus is the rent standing of a tenant.
type TenantStatus string

const (
	TenantStatusActive  TenantStatus = "active"
	TenantStatusLate    TenantStatus = "late"
	TenantStatusPending TenantStatus = "pending"
)

// Valid reports whether s is one of the known statuses.
func (s TenantStatus) Valid() bool {
	switch s {
	case TenantStatusActive, TenantStatusLate, TenantStatusPending:
		return true
	}
	return false
}

// Tenant is a person leasing a unit of a property.
// PropertyID is not enforced as a foreign key. PropertyName is filled in
// by listings and is not stored.
type Tenant struct {
	Base
	Name       string       `gorm:"not null" json:"name"`
	Email      string       `gorm:"index" json:"email"`
	Phone      string       `json:"phone"`
	LeaseStart time.Time    `gorm:"not null" json:"lease_start"`
	LeaseEnd   time.Time    `gorm:"not null" json:"lease_end"`
	Rent       int64        `gorm:"type:bigint;not null" json:"rent"`
	PropertyID string       `gorm:"type:uuid;not null;index" json:"property_id"`
	Unit       string       `json:"unit"`
	Status     TenantStatus `gorm:"not null;index" json:"status"`

	PropertyName string `gorm:"-" json:"property_name,omitempty"`
}

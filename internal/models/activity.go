package models

import "time"

// ActivityKind classifies an entry of the activity feed.
type ActivityKind string

const (
	ActivityLeaseSigned        ActivityKind = "lease_signed"
	ActivityLeaseRenewal       ActivityKind = "lease_renewal"
	ActivityPaymentReceived    ActivityKind = "payment_received"
	ActivityMaintenanceRequest ActivityKind = "maintenance_request"
	ActivityPropertyAdded      ActivityKind = "property_added"
	ActivityOther              ActivityKind = "other"
)

// Valid reports whether k is a known activity kind.
func (k ActivityKind) Valid() bool {
	switch k {
	case ActivityLeaseSigned, ActivityLeaseRenewal, ActivityPaymentReceived,
		ActivityMaintenanceRequest, ActivityPropertyAdded, ActivityOther:
		return true
	}
	return false
}

// Activity is an append-only event shown in the dashboard feed.
type Activity struct {
	Base
	Kind        ActivityKind `gorm:"not null" json:"kind"`
	Description string       `gorm:"not null" json:"description"`
	PropertyID  string       `gorm:"type:uuid;index" json:"property_id"`
	OccurredAt  time.Time    `gorm:"not null;index" json:"occurred_at"`
}

package models

import "time"

// PropertyTypes lists the property types offered when adding a property.
// The type column itself is free-form.
var PropertyTypes = []string{
	"Apartment Complex",
	"Single Family",
	"Commercial",
	"Multi-Family",
	"Condo",
}

// Property is a rental building or house made up of one or more units.
type Property struct {
	Base
	Name        string     `gorm:"not null" json:"name"`
	Address     string     `gorm:"not null" json:"address"`
	City        string     `gorm:"not null;index" json:"city"`
	Type        string     `gorm:"not null;index" json:"type"`
	Units       int        `gorm:"not null" json:"units"`
	Value       int64      `gorm:"type:bigint;not null" json:"value"`
	Image       string     `json:"image"`
	Description string     `json:"description,omitempty"`
	AddedDate   *time.Time `json:"added_date,omitempty"`
}

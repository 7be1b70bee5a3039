package services

import (
	"gorm.io/gorm"

	"rentfolio/internal/analytics"
	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/models"
)

// loadDirectory indexes the names of the given properties and tenants.
// Deleted or missing records are left out and resolve to Unknown.
func loadDirectory(db *gorm.DB, propertyIDs, tenantIDs []string) (*analytics.Directory, error) {
	var properties []models.Property
	if len(propertyIDs) > 0 {
		if err := db.Select("id", "name").Where("id IN ?", propertyIDs).Find(&properties).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	var tenants []models.Tenant
	if len(tenantIDs) > 0 {
		if err := db.Select("id", "name").Where("id IN ?", tenantIDs).Find(&tenants).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return analytics.NewDirectory(properties, tenants), nil
}

// propertyNameMatches selects the ids of live properties whose name
// matches the lowered LIKE pattern.
func propertyNameMatches(db *gorm.DB, like string) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&models.Property{}).
		Select("id").
		Where("LOWER(name) LIKE ?", like)
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/models"
	"rentfolio/internal/pagination"
)

// propertyService handles property-related business logic.
type propertyService struct {
	db              *gorm.DB
	activityService ActivityServicer
}

// NewPropertyService creates a new PropertyServicer.
func NewPropertyService(db *gorm.DB, activityService ActivityServicer) PropertyServicer {
	return &propertyService{db: db, activityService: activityService}
}

func validateProperty(in PropertyInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "property name is required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "property address is required")
	}
	if in.Units < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "units must not be negative")
	}
	if in.Value < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "value must not be negative")
	}
	return nil
}

func (in PropertyInput) apply(p *models.Property) {
	p.Name = strings.TrimSpace(in.Name)
	p.Address = strings.TrimSpace(in.Address)
	p.City = strings.TrimSpace(in.City)
	p.Type = strings.TrimSpace(in.Type)
	p.Units = in.Units
	p.Value = in.Value
	p.Image = in.Image
	p.Description = in.Description
	p.AddedDate = in.AddedDate
}

// CreateProperty adds a property and records it in the activity feed.
func (s *propertyService) CreateProperty(in PropertyInput) (*models.Property, error) {
	if err := validateProperty(in); err != nil {
		return nil, err
	}

	property := &models.Property{}
	in.apply(property)
	if property.AddedDate == nil {
		now := time.Now().UTC()
		property.AddedDate = &now
	}

	if err := s.db.Create(property).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.activityService.Record(models.ActivityPropertyAdded, DescPropertyAdded, property.ID, *property.AddedDate)
	return property, nil
}

// GetProperties retrieves a paginated, filtered list of properties.
func (s *propertyService) GetProperties(page pagination.PageRequest, filter PropertyFilter) (*pagination.PageResponse[models.Property], error) {
	page.Defaults()

	base := s.db.Model(&models.Property{})
	if filter.Search != "" {
		like := likePattern(filter.Search)
		base = base.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ? OR LOWER(city) LIKE ?", like, like, like)
	}
	if filter.Type != "" {
		base = base.Where("type = ?", filter.Type)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var properties []models.Property
	if err := base.Scopes(pagination.Paginate(page)).
		Order("name ASC").
		Find(&properties).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(properties, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetPropertyByID retrieves a property by ID.
func (s *propertyService) GetPropertyByID(id string) (*models.Property, error) {
	var property models.Property
	if err := s.db.Where("id = ?", id).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &property, nil
}

// UpdateProperty replaces the writable fields of a property.
func (s *propertyService) UpdateProperty(id string, in PropertyInput) (*models.Property, error) {
	if err := validateProperty(in); err != nil {
		return nil, err
	}

	property, err := s.GetPropertyByID(id)
	if err != nil {
		return nil, err
	}

	addedDate := property.AddedDate
	in.apply(property)
	if property.AddedDate == nil {
		property.AddedDate = addedDate
	}

	if err := s.db.Save(property).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return property, nil
}

// DeleteProperty removes a property together with its tenants and
// transactions.
func (s *propertyService) DeleteProperty(id string) error {
	property, err := s.GetPropertyByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", property.ID).Delete(&models.Tenant{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("property_id = ?", property.ID).Delete(&models.Transaction{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(property).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// AllProperties returns every property in insertion order.
func (s *propertyService) AllProperties() ([]models.Property, error) {
	var properties []models.Property
	if err := s.db.Order("created_at ASC, id ASC").Find(&properties).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return properties, nil
}

func likePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}

package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/models"
	"rentfolio/internal/pagination"
)

// tenantService handles tenant-related business logic.
type tenantService struct {
	db              *gorm.DB
	propertyService PropertyServicer
	activityService ActivityServicer
}

// NewTenantService creates a new TenantServicer.
func NewTenantService(db *gorm.DB, propertyService PropertyServicer, activityService ActivityServicer) TenantServicer {
	return &tenantService{
		db:              db,
		propertyService: propertyService,
		activityService: activityService,
	}
}

// validateTenant checks the input and fills in the default status.
func (s *tenantService) validateTenant(in *TenantInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "tenant name is required")
	}
	if in.PropertyID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "property ID is required")
	}
	if in.Rent < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "rent must not be negative")
	}
	if in.LeaseStart.IsZero() || in.LeaseEnd.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "lease start and end are required")
	}
	if in.LeaseEnd.Before(in.LeaseStart) {
		return apperrors.ErrInvalidLeaseTerm
	}
	if in.Status == "" {
		in.Status = models.TenantStatusActive
	}
	if !in.Status.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be active, late or pending")
	}

	_, err := s.propertyService.GetPropertyByID(in.PropertyID)
	return err
}

func (in TenantInput) apply(t *models.Tenant) {
	t.Name = strings.TrimSpace(in.Name)
	t.Email = strings.ToLower(strings.TrimSpace(in.Email))
	t.Phone = strings.TrimSpace(in.Phone)
	t.LeaseStart = in.LeaseStart
	t.LeaseEnd = in.LeaseEnd
	t.Rent = in.Rent
	t.PropertyID = in.PropertyID
	t.Unit = strings.TrimSpace(in.Unit)
	t.Status = in.Status
}

// CreateTenant signs a new lease and records it in the activity feed.
func (s *tenantService) CreateTenant(in TenantInput) (*models.Tenant, error) {
	if err := s.validateTenant(&in); err != nil {
		return nil, err
	}

	tenant := &models.Tenant{}
	in.apply(tenant)
	if err := s.db.Create(tenant).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.activityService.Record(models.ActivityLeaseSigned, DescLeaseSigned, tenant.PropertyID, tenant.CreatedAt)
	return tenant, nil
}

// GetTenants retrieves a paginated, filtered list of tenants with the name
// of each tenant's property. Search also matches the property name.
func (s *tenantService) GetTenants(page pagination.PageRequest, filter TenantFilter) (*pagination.PageResponse[models.Tenant], error) {
	page.Defaults()

	base := s.db.Model(&models.Tenant{})
	if filter.Search != "" {
		like := likePattern(filter.Search)
		base = base.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR property_id IN (?)",
			like, like, propertyNameMatches(s.db, like))
	}
	if filter.Status != nil {
		base = base.Where("status = ?", *filter.Status)
	}
	if filter.PropertyID != "" {
		base = base.Where("property_id = ?", filter.PropertyID)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var tenants []models.Tenant
	if err := base.Scopes(pagination.Paginate(page)).
		Order("name ASC").
		Find(&tenants).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	propertyIDs := make([]string, len(tenants))
	for i, t := range tenants {
		propertyIDs[i] = t.PropertyID
	}
	dir, err := loadDirectory(s.db, uniqueIDs(propertyIDs), nil)
	if err != nil {
		return nil, err
	}
	for i := range tenants {
		tenants[i].PropertyName = dir.PropertyName(tenants[i].PropertyID)
	}

	result := pagination.NewPageResponse(tenants, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTenantByID retrieves a tenant by ID.
func (s *tenantService) GetTenantByID(id string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.Where("id = ?", id).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &tenant, nil
}

// UpdateTenant replaces the writable fields of a tenant.
func (s *tenantService) UpdateTenant(id string, in TenantInput) (*models.Tenant, error) {
	tenant, err := s.GetTenantByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.validateTenant(&in); err != nil {
		return nil, err
	}

	in.apply(tenant)
	if err := s.db.Save(tenant).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tenant, nil
}

// DeleteTenant removes a tenant. Transactions that reference the tenant
// keep the reference.
func (s *tenantService) DeleteTenant(id string) error {
	tenant, err := s.GetTenantByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(tenant).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// AllTenants returns every tenant in insertion order.
func (s *tenantService) AllTenants() ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := s.db.Order("created_at ASC, id ASC").Find(&tenants).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tenants, nil
}

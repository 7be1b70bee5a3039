package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/models"
	"rentfolio/internal/pagination"
	"rentfolio/internal/services"
)

// TenantHandler handles tenant-related requests.
type TenantHandler struct {
	tenantService services.TenantServicer
}

// NewTenantHandler creates a new TenantHandler.
func NewTenantHandler(tenantService services.TenantServicer) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// TenantRequest represents the payload for creating or replacing a tenant.
// Rent is in cents.
type TenantRequest struct {
	Name       string              `json:"name" binding:"required,max=200"`
	Email      string              `json:"email" binding:"omitempty,email,max=255"`
	Phone      string              `json:"phone" binding:"max=50"`
	LeaseStart string              `json:"lease_start" binding:"required"`
	LeaseEnd   string              `json:"lease_end" binding:"required"`
	Rent       int64               `json:"rent" binding:"gte=0"`
	PropertyID string              `json:"property_id" binding:"required,uuid"`
	Unit       string              `json:"unit" binding:"max=50"`
	Status     models.TenantStatus `json:"status" binding:"omitempty,tenant_status"`
}

func (r TenantRequest) input() (services.TenantInput, error) {
	start, err := parseFlexibleTime(r.LeaseStart)
	if err != nil {
		return services.TenantInput{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	end, err := parseFlexibleTime(r.LeaseEnd)
	if err != nil {
		return services.TenantInput{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return services.TenantInput{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		LeaseStart: start,
		LeaseEnd:   end,
		Rent:       r.Rent,
		PropertyID: r.PropertyID,
		Unit:       r.Unit,
		Status:     r.Status,
	}, nil
}

// TenantQuery holds the list filters for tenants.
type TenantQuery struct {
	pagination.PageRequest
	Search     string `form:"search" binding:"max=100"`
	Status     string `form:"status" binding:"omitempty,tenant_status"`
	PropertyID string `form:"property_id" binding:"omitempty,uuid"`
}

func (q TenantQuery) filter() services.TenantFilter {
	f := services.TenantFilter{Search: q.Search, PropertyID: q.PropertyID}
	if q.Status != "" {
		status := models.TenantStatus(q.Status)
		f.Status = &status
	}
	return f
}

// CreateTenant handles the creation of a new tenant
// @Summary     Create a tenant
// @Tags        tenants
// @Accept      json
// @Produce     json
// @Param       request body TenantRequest true "Tenant details"
// @Success     201 {object} models.Tenant
// @Failure     400 {object} ErrorResponse "Invalid input or lease term"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	in, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	tenant, err := h.tenantService.CreateTenant(in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"tenant": tenant})
}

// GetTenants lists tenants
// @Summary     List tenants
// @Tags        tenants
// @Produce     json
// @Param       search      query string false "Search name or email"
// @Param       status      query string false "active, late or pending"
// @Param       property_id query string false "Property ID"
// @Param       page        query int    false "Page number"
// @Param       page_size   query int    false "Page size (max 100)"
// @Success     200 {object} pagination.PageResponse[models.Tenant]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /tenants [get]
func (h *TenantHandler) GetTenants(c *gin.Context) {
	var q TenantQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.tenantService.GetTenants(q.PageRequest, q.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTenantByID returns a single tenant
// @Summary     Get a tenant
// @Tags        tenants
// @Produce     json
// @Param       id path string true "Tenant ID"
// @Success     200 {object} models.Tenant
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Tenant not found"
// @Router      /tenants/{id} [get]
func (h *TenantHandler) GetTenantByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tenant, err := h.tenantService.GetTenantByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tenant": tenant})
}

// UpdateTenant replaces a tenant
// @Summary     Update a tenant
// @Tags        tenants
// @Accept      json
// @Produce     json
// @Param       id      path string        true "Tenant ID"
// @Param       request body TenantRequest true "Tenant details"
// @Success     200 {object} models.Tenant
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Tenant or property not found"
// @Router      /tenants/{id} [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	in, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	tenant, err := h.tenantService.UpdateTenant(id, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tenant": tenant})
}

// DeleteTenant removes a tenant
// @Summary     Delete a tenant
// @Tags        tenants
// @Param       id path string true "Tenant ID"
// @Success     204
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Tenant not found"
// @Router      /tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.tenantService.DeleteTenant(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

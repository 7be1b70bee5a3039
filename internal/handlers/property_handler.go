package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentfolio/internal/models"
	"rentfolio/internal/pagination"
	"rentfolio/internal/services"
)

// PropertyHandler handles property-related requests.
type PropertyHandler struct {
	propertyService services.PropertyServicer
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService services.PropertyServicer) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// PropertyRequest represents the payload for creating or replacing a property.
// Value is in cents.
type PropertyRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Address     string `json:"address" binding:"required,max=500"`
	City        string `json:"city" binding:"max=100"`
	Type        string `json:"type" binding:"max=100"`
	Units       int    `json:"units" binding:"gte=0"`
	Value       int64  `json:"value" binding:"gte=0"`
	Image       string `json:"image" binding:"max=1000"`
	Description string `json:"description" binding:"max=2000"`
	AddedDate   string `json:"added_date"`
}

func (r PropertyRequest) input() (services.PropertyInput, error) {
	added, err := parseOptionalTime(r.AddedDate)
	if err != nil {
		return services.PropertyInput{}, err
	}
	return services.PropertyInput{
		Name:        r.Name,
		Address:     r.Address,
		City:        r.City,
		Type:        r.Type,
		Units:       r.Units,
		Value:       r.Value,
		Image:       r.Image,
		Description: r.Description,
		AddedDate:   added,
	}, nil
}

// PropertyQuery holds the list filters for properties.
type PropertyQuery struct {
	pagination.PageRequest
	Search string `form:"search" binding:"max=100"`
	Type   string `form:"type" binding:"max=100"`
}

// CreateProperty handles the creation of a new property
// @Summary     Create a property
// @Tags        properties
// @Accept      json
// @Produce     json
// @Param       request body PropertyRequest true "Property details"
// @Success     201 {object} models.Property
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	in, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	property, err := h.propertyService.CreateProperty(in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"property": property})
}

// GetProperties lists properties
// @Summary     List properties
// @Tags        properties
// @Produce     json
// @Param       search    query string false "Search name, address or city"
// @Param       type      query string false "Property type"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size (max 100)"
// @Success     200 {object} pagination.PageResponse[models.Property]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /properties [get]
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	var q PropertyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.propertyService.GetProperties(q.PageRequest, services.PropertyFilter{Search: q.Search, Type: q.Type})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPropertyByID returns a single property
// @Summary     Get a property
// @Tags        properties
// @Produce     json
// @Param       id path string true "Property ID"
// @Success     200 {object} models.Property
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /properties/{id} [get]
func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	property, err := h.propertyService.GetPropertyByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property})
}

// UpdateProperty replaces a property
// @Summary     Update a property
// @Tags        properties
// @Accept      json
// @Produce     json
// @Param       id      path string          true "Property ID"
// @Param       request body PropertyRequest true "Property details"
// @Success     200 {object} models.Property
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	in, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	property, err := h.propertyService.UpdateProperty(id, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property})
}

// DeleteProperty removes a property with its tenants and transactions
// @Summary     Delete a property
// @Tags        properties
// @Param       id path string true "Property ID"
// @Success     204
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.propertyService.DeleteProperty(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPropertyTypes lists the offered property types
// @Summary     List property types
// @Tags        properties
// @Produce     json
// @Success     200 {object} map[string][]string
// @Router      /properties/types [get]
func (h *PropertyHandler) GetPropertyTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": models.PropertyTypes})
}

package analytics

import "rentfolio/internal/models"

// Directory resolves property and tenant ids to display names. References
// are never assumed valid: a missing id resolves to UnknownLabel.
type Directory struct {
	properties map[string]string
	tenants    map[string]string
}

// NewDirectory indexes the given records. Later duplicates of an id win.
func NewDirectory(properties []models.Property, tenants []models.Tenant) *Directory {
	d := &Directory{
		properties: make(map[string]string, len(properties)),
		tenants:    make(map[string]string, len(tenants)),
	}
	for _, p := range properties {
		d.properties[p.ID] = p.Name
	}
	for _, t := range tenants {
		d.tenants[t.ID] = t.Name
	}
	return d
}

// PropertyName returns the name of the property or UnknownLabel.
func (d *Directory) PropertyName(id string) string {
	if name, ok := d.properties[id]; ok {
		return name
	}
	return UnknownLabel
}

// TenantName returns "" for a transaction without a tenant, the tenant's
// name when known, and UnknownLabel otherwise.
func (d *Directory) TenantName(id *string) string {
	if id == nil || *id == "" {
		return ""
	}
	if name, ok := d.tenants[*id]; ok {
		return name
	}
	return UnknownLabel
}

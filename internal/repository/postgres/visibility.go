package postgres

import (
	"github.com/kingrain94/org-directory-api/internal/domain"
	"github.com/kingrain94/org-directory-api/internal/visibility"
)

// NewVisibilityRegistry wires the row-visibility filters every query in this
// package runs under: soft delete and tenant scope, for each entity type.
// Registration happens once here; the filters themselves read the tenant
// scope from the request context on every query.
func NewVisibilityRegistry() *visibility.Registry {
	registry := visibility.NewRegistry()

	for _, model := range []visibility.Tabler{
		domain.Tenant{},
		domain.Organization{},
		domain.Employee{},
	} {
		registry.Register(model, "soft_delete", visibility.NotDeleted(model))
		registry.Register(model, "tenant_scope", visibility.TenantFilter(model))
	}

	registry.Freeze()
	return registry
}

package visibility

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/org-directory-api/internal/tenancy"
)

// TenantOwned is implemented by models that carry the tenant discriminator
// as one of their own columns.
type TenantOwned interface {
	Tabler
	TenantColumn() string
}

// TenantOwnedVia is implemented by models scoped through a single parent
// hop: the model holds a foreign key to a parent table that carries the
// tenant discriminator.
type TenantOwnedVia interface {
	Tabler
	TenantParent() (table, foreignKey, tenantColumn string)
}

// TenantFilter builds the tenant-visibility filter for the model, choosing
// the direct or one-hop form from the interface the model implements.
// The returned filter reads the ambient scope on every evaluation; an
// unrestricted scope disables tenant filtering entirely.
func TenantFilter(model Tabler) Filter {
	switch m := model.(type) {
	case TenantOwned:
		column := fmt.Sprintf("%s.%s = ?", m.TableName(), m.TenantColumn())
		return func(ctx context.Context, db *gorm.DB) *gorm.DB {
			tenantID, ok := tenancy.FromContext(ctx)
			if !ok {
				return db
			}
			return db.Where(column, tenantID)
		}
	case TenantOwnedVia:
		parentTable, foreignKey, tenantColumn := m.TenantParent()
		condition := fmt.Sprintf("%s.%s IN (SELECT id FROM %s WHERE %s = ?)",
			m.TableName(), foreignKey, parentTable, tenantColumn)
		return func(ctx context.Context, db *gorm.DB) *gorm.DB {
			tenantID, ok := tenancy.FromContext(ctx)
			if !ok {
				return db
			}
			return db.Where(condition, tenantID)
		}
	default:
		panic(fmt.Sprintf("visibility: model %q is neither TenantOwned nor TenantOwnedVia", model.TableName()))
	}
}

package visibility

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// NotDeleted hides logically deleted rows. Unlike the tenant filter it does
// not consult the scope: soft-deleted rows stay invisible even to
// unrestricted administrative queries.
func NotDeleted(model Tabler) Filter {
	condition := fmt.Sprintf("%s.deleted_at IS NULL", model.TableName())
	return func(ctx context.Context, db *gorm.DB) *gorm.DB {
		return db.Where(condition)
	}
}

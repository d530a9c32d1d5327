package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/org-directory-api/internal/domain"
	"github.com/kingrain94/org-directory-api/internal/visibility"
)

type TenantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
	registry *visibility.Registry
}

func NewTenantRepository(writerDB, readerDB *gorm.DB, registry *visibility.Registry) *TenantRepository {
	return &TenantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
		registry: registry,
	}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}

	if err := r.writerDB.WithContext(ctx).Create(tenant).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant

	db := r.registry.Scoped(ctx, r.readerDB.WithContext(ctx), domain.Tenant{})
	if err := db.First(&tenant, "tenants.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	var tenants []domain.Tenant

	db := r.registry.Scoped(ctx, r.readerDB.WithContext(ctx), domain.Tenant{})
	if err := db.Order("tenants.created_at").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// Delete marks the tenant deleted. Rows outside the current scope are
// invisible to the update, so deleting them reports not found.
func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	db := r.registry.Scoped(ctx, r.writerDB.WithContext(ctx).Model(&domain.Tenant{}), domain.Tenant{})
	result := db.Where("tenants.id = ?", id).Update("deleted_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TenantRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64

	db := r.registry.Scoped(ctx, r.readerDB.WithContext(ctx).Model(&domain.Tenant{}), domain.Tenant{})
	if err := db.Where("tenants.id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

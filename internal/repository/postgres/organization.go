package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/org-directory-api/internal/domain"
	"github.com/kingrain94/org-directory-api/internal/visibility"
)

type OrganizationRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
	registry *visibility.Registry
}

func NewOrganizationRepository(writerDB, readerDB *gorm.DB, registry *visibility.Registry) *OrganizationRepository {
	return &OrganizationRepository{
		writerDB: writerDB,
		readerDB: readerDB,
		registry: registry,
	}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	if org.ID == "" {
		org.ID = uuid.New().String()
	}

	if err := r.writerDB.WithContext(ctx).Create(org).Error; err != nil {
		return nil, err
	}
	return org, nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	var org domain.Organization

	db := r.registry.Scoped(ctx, r.readerDB.WithContext(ctx), domain.Organization{})
	if err := db.First(&org, "organizations.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	var orgs []domain.Organization

	db := r.registry.Scoped(ctx, r.readerDB.WithContext(ctx), domain.Organization{})
	if err := db.Order("organizations.created_at").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id string) error {
	db := r.registry.Scoped(ctx, r.writerDB.WithContext(ctx).Model(&domain.Organization{}), domain.Organization{})
	result := db.Where("organizations.id = ?", id).Update("deleted_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists runs under the composed visibility filters, so an organization
// belonging to another tenant reports false exactly like a missing row.
func (r *OrganizationRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64

	db := r.registry.Scoped(ctx, r.readerDB.WithContext(ctx).Model(&domain.Organization{}), domain.Organization{})
	if err := db.Where("organizations.id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

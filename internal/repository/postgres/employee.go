package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/org-directory-api/internal/domain"
	"github.com/kingrain94/org-directory-api/internal/visibility"
)

type EmployeeRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
	registry *visibility.Registry
}

func NewEmployeeRepository(writerDB, readerDB *gorm.DB, registry *visibility.Registry) *EmployeeRepository {
	return &EmployeeRepository{
		writerDB: writerDB,
		readerDB: readerDB,
		registry: registry,
	}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}

	if err := r.writerDB.WithContext(ctx).Create(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	var employee domain.Employee

	db := r.registry.Scoped(ctx, r.readerDB.WithContext(ctx), domain.Employee{})
	if err := db.First(&employee, "employees.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) List(ctx context.Context, organizationID string) ([]domain.Employee, error) {
	var employees []domain.Employee

	db := r.registry.Scoped(ctx, r.readerDB.WithContext(ctx), domain.Employee{})
	if organizationID != "" {
		db = db.Where("employees.organization_id = ?", organizationID)
	}
	if err := db.Order("employees.created_at").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	db := r.registry.Scoped(ctx, r.writerDB.WithContext(ctx).Model(&domain.Employee{}), domain.Employee{})
	result := db.Where("employees.id = ?", id).Update("deleted_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package postgres

import (
	"gorm.io/gorm"

	"github.com/kingrain94/org-directory-api/internal/repository"
)

type postgresRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
	tenant   repository.TenantRepository
	org      repository.OrganizationRepository
	employee repository.EmployeeRepository
}

func NewPostgresRepository(writerDB, readerDB *gorm.DB) repository.Repository {
	registry := NewVisibilityRegistry()
	return &postgresRepository{
		writerDB: writerDB,
		readerDB: readerDB,
		tenant:   NewTenantRepository(writerDB, readerDB, registry),
		org:      NewOrganizationRepository(writerDB, readerDB, registry),
		employee: NewEmployeeRepository(writerDB, readerDB, registry),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenant
}

func (r *postgresRepository) Organization() repository.OrganizationRepository {
	return r.org
}

func (r *postgresRepository) Employee() repository.EmployeeRepository {
	return r.employee
}

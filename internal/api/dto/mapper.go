package dto

import (
	"github.com/kingrain94/org-directory-api/internal/domain"
)

// FromTenant converts a Tenant domain model to its response DTO
func FromTenant(tenant *domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:          tenant.ID,
		Name:        tenant.Name,
		Description: tenant.Description,
		CreatedAt:   tenant.CreatedAt,
		UpdatedAt:   tenant.UpdatedAt,
	}
}

// FromOrganization converts an Organization domain model to its response DTO
func FromOrganization(org *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:        org.ID,
		TenantID:  org.TenantID,
		Name:      org.Name,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}

// FromEmployee converts an Employee domain model to its response DTO
func FromEmployee(employee *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             employee.ID,
		OrganizationID: employee.OrganizationID,
		Name:           employee.Name,
		Code:           employee.Code,
		CreatedAt:      employee.CreatedAt,
		UpdatedAt:      employee.UpdatedAt,
	}
}

package dto

import (
	"time"
)

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID          string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string    `json:"name" example:"Acme Holdings"`
	Description string    `json:"description" example:"Primary production tenant"`
	CreatedAt   time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

// OrganizationResponse represents an organization in API responses
type OrganizationResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID  string    `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Engineering"`
	CreatedAt time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID             string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	OrganizationID string    `json:"organization_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name           string    `json:"name" example:"Jane Doe"`
	Code           string    `json:"code" example:"EMP-0042"`
	CreatedAt      time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt      time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

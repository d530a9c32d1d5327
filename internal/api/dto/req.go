package dto

type CreateTenantRequest struct {
	Name        string `json:"name" binding:"required" example:"Acme Holdings"`
	Description string `json:"description" example:"Primary production tenant"`
}

type CreateOrganizationRequest struct {
	// TenantID may be omitted under a tenant scope, which then supplies it.
	TenantID string `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name     string `json:"name" binding:"required" example:"Engineering"`
}

type CreateEmployeeRequest struct {
	OrganizationID string `json:"organization_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name           string `json:"name" binding:"required" example:"Jane Doe"`
	Code           string `json:"code" example:"EMP-0042"`
}

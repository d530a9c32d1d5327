package service

import "errors"

// Not-found is the only error class for rows the caller cannot see. A row
// owned by another tenant and a row that never existed are deliberately
// indistinguishable, so cross-tenant references leak nothing.
var (
	ErrTenantNotFound       = errors.New("tenant not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrEmployeeNotFound     = errors.New("employee not found")
)

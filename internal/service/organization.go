package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kingrain94/org-directory-api/internal/api/dto"
	"github.com/kingrain94/org-directory-api/internal/domain"
	"github.com/kingrain94/org-directory-api/internal/repository"
	"github.com/kingrain94/org-directory-api/internal/tenancy"
)

type OrganizationService struct {
	repo repository.Repository
}

func NewOrganizationService(repo repository.Repository) *OrganizationService {
	return &OrganizationService{repo: repo}
}

// Create validates the declared tenant through a scoped existence check
// before inserting. Under a tenant scope the request may omit tenant_id,
// which then defaults to the scope's tenant; a tenant_id pointing at
// another tenant is invisible to the check and fails as not found.
func (s *OrganizationService) Create(ctx context.Context, req dto.CreateOrganizationRequest) (dto.OrganizationResponse, error) {
	tenantID := req.TenantID
	if tenantID == "" {
		scopeTenant, ok := tenancy.FromContext(ctx)
		if !ok {
			return dto.OrganizationResponse{}, ErrTenantNotFound
		}
		tenantID = scopeTenant
	}

	exists, err := s.repo.Tenant().Exists(ctx, tenantID)
	if err != nil {
		return dto.OrganizationResponse{}, err
	}
	if !exists {
		return dto.OrganizationResponse{}, ErrTenantNotFound
	}

	org := &domain.Organization{
		TenantID: tenantID,
		Name:     req.Name,
	}

	created, err := s.repo.Organization().Create(ctx, org)
	if err != nil {
		return dto.OrganizationResponse{}, err
	}

	return dto.FromOrganization(created), nil
}

func (s *OrganizationService) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	org, err := s.repo.Organization().GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrganizationNotFound
	}
	return org, err
}

func (s *OrganizationService) List(ctx context.Context) ([]dto.OrganizationResponse, error) {
	orgs, err := s.repo.Organization().List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = dto.FromOrganization(&org)
	}
	return responses, nil
}

func (s *OrganizationService) Delete(ctx context.Context, id string) error {
	err := s.repo.Organization().Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrganizationNotFound
	}
	return err
}

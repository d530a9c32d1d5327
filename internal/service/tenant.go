package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kingrain94/org-directory-api/internal/api/dto"
	"github.com/kingrain94/org-directory-api/internal/domain"
	"github.com/kingrain94/org-directory-api/internal/repository"
)

type TenantService struct {
	repo repository.Repository
}

func NewTenantService(repo repository.Repository) *TenantService {
	return &TenantService{repo: repo}
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (dto.TenantResponse, error) {
	tenant := &domain.Tenant{
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := s.repo.Tenant().Create(ctx, tenant)
	if err != nil {
		return dto.TenantResponse{}, err
	}

	return dto.FromTenant(created), nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTenantNotFound
	}
	return tenant, err
}

func (s *TenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	tenants, err := s.repo.Tenant().List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TenantResponse, len(tenants))
	for i, tenant := range tenants {
		responses[i] = dto.FromTenant(&tenant)
	}
	return responses, nil
}

func (s *TenantService) Delete(ctx context.Context, id string) error {
	err := s.repo.Tenant().Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTenantNotFound
	}
	return err
}

package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kingrain94/org-directory-api/internal/api/dto"
	"github.com/kingrain94/org-directory-api/internal/domain"
	"github.com/kingrain94/org-directory-api/internal/repository"
)

type EmployeeService struct {
	repo repository.Repository
}

func NewEmployeeService(repo repository.Repository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// Create checks that the declared organization resolves under the current
// scope before inserting. The existence check runs through the composed
// visibility filters, so an organization owned by another tenant fails the
// check the same way a missing one does. This is the only tenant-boundary
// enforcement on employee writes.
func (s *EmployeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (dto.EmployeeResponse, error) {
	exists, err := s.repo.Organization().Exists(ctx, req.OrganizationID)
	if err != nil {
		return dto.EmployeeResponse{}, err
	}
	if !exists {
		return dto.EmployeeResponse{}, ErrOrganizationNotFound
	}

	employee := &domain.Employee{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Code:           req.Code,
	}

	created, err := s.repo.Employee().Create(ctx, employee)
	if err != nil {
		return dto.EmployeeResponse{}, err
	}

	return dto.FromEmployee(created), nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	employee, err := s.repo.Employee().GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmployeeNotFound
	}
	return employee, err
}

func (s *EmployeeService) List(ctx context.Context, organizationID string) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.Employee().List(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EmployeeResponse, len(employees))
	for i, employee := range employees {
		responses[i] = dto.FromEmployee(&employee)
	}
	return responses, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	err := s.repo.Employee().Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEmployeeNotFound
	}
	return err
}

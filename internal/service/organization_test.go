package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kingrain94/org-directory-api/internal/api/dto"
	"github.com/kingrain94/org-directory-api/internal/domain"
	"github.com/kingrain94/org-directory-api/internal/tenancy"
)

type OrganizationServiceTestSuite struct {
	suite.Suite
	mockRepo   *mockRepository
	mockTenant *mockTenantRepository
	mockOrg    *mockOrganizationRepository
	service    *OrganizationService
}

func (s *OrganizationServiceTestSuite) SetupTest() {
	s.mockRepo = new(mockRepository)
	s.mockTenant = new(mockTenantRepository)
	s.mockOrg = new(mockOrganizationRepository)

	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("Organization").Return(s.mockOrg)

	s.service = NewOrganizationService(s.mockRepo)
}

func TestOrganizationService(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}

func (s *OrganizationServiceTestSuite) TestCreate_TenantIDDefaultsToScope() {
	// Arrange
	ctx := tenancy.WithTenant(context.Background(), "tenant1")
	req := dto.CreateOrganizationRequest{Name: "Engineering"}

	expectedOrg := &domain.Organization{
		ID:        "org1",
		TenantID:  "tenant1",
		Name:      req.Name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	s.mockTenant.On("Exists", ctx, "tenant1").Return(true, nil)
	s.mockOrg.On("Create", ctx, mock.AnythingOfType("*domain.Organization")).Return(expectedOrg, nil)

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal("tenant1", resp.TenantID)
	s.Equal("Engineering", resp.Name)
	s.mockTenant.AssertExpectations(s.T())
	s.mockOrg.AssertExpectations(s.T())
}

func (s *OrganizationServiceTestSuite) TestCreate_DeclaredTenantNotVisible() {
	// Arrange: scope tenant2, declared tenant1. The scoped existence check
	// cannot see tenant1, so creation fails as not found.
	ctx := tenancy.WithTenant(context.Background(), "tenant2")
	req := dto.CreateOrganizationRequest{TenantID: "tenant1", Name: "Engineering"}

	s.mockTenant.On("Exists", ctx, "tenant1").Return(false, nil)

	// Act
	_, err := s.service.Create(ctx, req)

	// Assert
	s.ErrorIs(err, ErrTenantNotFound)
	s.mockOrg.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *OrganizationServiceTestSuite) TestCreate_UnrestrictedRequiresExplicitTenant() {
	ctx := context.Background()
	req := dto.CreateOrganizationRequest{Name: "Engineering"}

	_, err := s.service.Create(ctx, req)

	s.ErrorIs(err, ErrTenantNotFound)
	s.mockTenant.AssertNotCalled(s.T(), "Exists", mock.Anything, mock.Anything)
}

func (s *OrganizationServiceTestSuite) TestCreate_UnrestrictedValidatesDeclaredTenant() {
	ctx := context.Background()
	req := dto.CreateOrganizationRequest{TenantID: "tenant1", Name: "Engineering"}

	expectedOrg := &domain.Organization{ID: "org1", TenantID: "tenant1", Name: req.Name}

	s.mockTenant.On("Exists", ctx, "tenant1").Return(true, nil)
	s.mockOrg.On("Create", ctx, mock.AnythingOfType("*domain.Organization")).Return(expectedOrg, nil)

	resp, err := s.service.Create(ctx, req)

	s.NoError(err)
	s.Equal("tenant1", resp.TenantID)
	s.mockTenant.AssertExpectations(s.T())
	s.mockOrg.AssertExpectations(s.T())
}

func (s *OrganizationServiceTestSuite) TestGetByID_NotFound() {
	ctx := tenancy.WithTenant(context.Background(), "tenant1")

	s.mockOrg.On("GetByID", ctx, "org9").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.GetByID(ctx, "org9")
	s.ErrorIs(err, ErrOrganizationNotFound)
	s.mockOrg.AssertExpectations(s.T())
}

func (s *OrganizationServiceTestSuite) TestList_Success() {
	ctx := tenancy.WithTenant(context.Background(), "tenant1")
	now := time.Now()

	orgs := []domain.Organization{
		{ID: "org1", TenantID: "tenant1", Name: "Engineering", CreatedAt: now, UpdatedAt: now},
	}

	s.mockOrg.On("List", ctx).Return(orgs, nil)

	resp, err := s.service.List(ctx)
	s.NoError(err)
	s.Len(resp, 1)
	s.Equal("org1", resp[0].ID)
	s.mockOrg.AssertExpectations(s.T())
}

func (s *OrganizationServiceTestSuite) TestDelete_NotFound() {
	ctx := tenancy.WithTenant(context.Background(), "tenant2")

	s.mockOrg.On("Delete", ctx, "org1").Return(gorm.ErrRecordNotFound)

	err := s.service.Delete(ctx, "org1")
	s.ErrorIs(err, ErrOrganizationNotFound)
	s.mockOrg.AssertExpectations(s.T())
}

package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/org-directory-api/internal/api/dto"
	"github.com/kingrain94/org-directory-api/internal/domain"
)

//go:generate mockery --name OrganizationService --output ../mocks
type OrganizationService interface {
	Create(ctx context.Context, req dto.CreateOrganizationRequest) (dto.OrganizationResponse, error)
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
	List(ctx context.Context) ([]dto.OrganizationResponse, error)
	Delete(ctx context.Context, id string) error
}

type OrganizationHandler struct {
	*BaseHandler
	service OrganizationService
}

func NewOrganizationHandler(service OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization godoc
// @Summary Create a new organization
// @Description Create an organization under the caller's tenant, or under an explicit tenant_id for administrative callers
// @Tags organizations
// @Accept json
// @Produce json
// @Param body body dto.CreateOrganizationRequest true "Organization object"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	org, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, org)
}

// ListOrganizations godoc
// @Summary List organizations visible under the current scope
// @Tags organizations
// @Produce json
// @Success 200 {array} dto.OrganizationResponse
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// GetOrganization godoc
// @Summary Get an organization by id
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 404 {object} dto.Error
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	org, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrganization(org))
}

// DeleteOrganization godoc
// @Summary Logically delete an organization
// @Tags organizations
// @Param id path string true "Organization ID"
// @Success 204
// @Failure 404 {object} dto.Error
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/org-directory-api/internal/api/dto"
	"github.com/kingrain94/org-directory-api/internal/service"
)

type BaseHandler struct{}

// RequestCtx returns the request context. The auth middleware has already
// bound the tenant scope to it, so everything the services and repositories
// do with this context is scoped.
func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	return ginCtx.Request.Context()
}

// RespondError maps service errors to HTTP responses. Rows invisible under
// the caller's scope surface as 404, the same as rows that do not exist.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTenantNotFound),
		errors.Is(err, service.ErrOrganizationNotFound),
		errors.Is(err, service.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
	}
}

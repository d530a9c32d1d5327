package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/org-directory-api/internal/api/dto"
	"github.com/kingrain94/org-directory-api/internal/domain"
)

//go:generate mockery --name EmployeeService --output ../mocks
type EmployeeService interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, organizationID string) ([]dto.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type EmployeeHandler struct {
	*BaseHandler
	service EmployeeService
}

func NewEmployeeHandler(service EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// CreateEmployee godoc
// @Summary Create a new employee
// @Description Create an employee in an organization visible under the current scope
// @Tags employees
// @Accept json
// @Produce json
// @Param body body dto.CreateEmployeeRequest true "Employee object"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	employee, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// ListEmployees godoc
// @Summary List employees visible under the current scope
// @Tags employees
// @Produce json
// @Param organization_id query string false "Filter by organization"
// @Success 200 {array} dto.EmployeeResponse
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.service.List(h.RequestCtx(c), c.Query("organization_id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// GetEmployee godoc
// @Summary Get an employee by id
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} dto.Error
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employee, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromEmployee(employee))
}

// DeleteEmployee godoc
// @Summary Logically delete an employee
// @Tags employees
// @Param id path string true "Employee ID"
// @Success 204
// @Failure 404 {object} dto.Error
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/model"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/repository"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/utils"
)

// EmployeeHandler serves the HR employee register.  Responses always
// carry the computed due field (salary - saved), so create and update
// return the freshly re-read row rather than echoing the request.
type EmployeeHandler struct {
	Employees *repository.EmployeeRepo
}

func NewEmployeeHandler(employees *repository.EmployeeRepo) *EmployeeHandler {
	return &EmployeeHandler{Employees: employees}
}

type employeeReq struct {
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	WorkType      string `json:"work_type"`
	EmployeeCode  string `json:"employee_code"`
	PF            string `json:"pf"`
	Advance       string `json:"advance"`
	AdvanceAmount any    `json:"advance_amount"`
	SalaryType    string `json:"salary_type"`
	Salary        any    `json:"salary"`
	Saved         any    `json:"saved"`
}

// toModel normalizes the payload: name is required, optional strings
// collapse to NULL, the two enums fold to their defaults and numerics
// that fail to parse become zero.
func (req employeeReq) toModel() (model.Employee, bool) {
	if strings.TrimSpace(req.Name) == "" {
		return model.Employee{}, false
	}
	return model.Employee{
		Name:          req.Name,
		Mobile:        utils.CleanString(req.Mobile),
		WorkType:      utils.CleanString(req.WorkType),
		EmployeeCode:  utils.CleanString(req.EmployeeCode),
		PF:            utils.CleanString(req.PF),
		Advance:       model.NormalizeAdvance(req.Advance),
		AdvanceAmount: utils.CleanNumber(req.AdvanceAmount),
		SalaryType:    model.NormalizeSalaryType(req.SalaryType),
		Salary:        utils.CleanNumber(req.Salary),
		Saved:         utils.CleanNumber(req.Saved),
	}, true
}

func employeeError(c echo.Context, msg string, err error) error {
	log.Printf("%s: %v", msg, err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": msg, "error": err.Error()})
}

// List handles GET /api/employees, sorted by name.
func (h *EmployeeHandler) List(c echo.Context) error {
	rows, err := h.Employees.List(c.Request().Context())
	if err != nil {
		return employeeError(c, "Error fetching employees", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Create handles POST /api/employees.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Name is a required field."})
	}
	e, ok := req.toModel()
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Name is a required field."})
	}
	created, err := h.Employees.Create(c.Request().Context(), e)
	if err != nil {
		return employeeError(c, "Error creating employee", err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/employees/:id with full-record replacement.
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Employee not found"})
	}
	var req employeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Name is a required field."})
	}
	e, okName := req.toModel()
	if !okName {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Name is a required field."})
	}
	updated, err := h.Employees.Update(c.Request().Context(), id, e)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Employee not found"})
		}
		return employeeError(c, "Error updating employee", err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Employee not found"})
	}
	if err := h.Employees.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Employee not found"})
		}
		return employeeError(c, "Error deleting employee", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Employee deleted"})
}

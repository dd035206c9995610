package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/repository"
)

var employeeCols = []string{"id", "name", "mobile", "work_type", "employee_code", "pf",
	"advance", "advance_amount", "salary_type", "salary", "saved", "due"}

func TestEmployeeCreateRequiresName(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewEmployeeHandler(repository.NewEmployeeRepo(db))

	c, rec := newJSONContext(t, http.MethodPost, "/api/employees",
		`{"name":"   ","mobile":"9876500000"}`, "")
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Name is a required field.")
	requireMet(t, mock)
}

func TestEmployeeCreateReturnsComputedDue(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewEmployeeHandler(repository.NewEmployeeRepo(db))

	mock.ExpectExec("INSERT INTO employees").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("SELECT (.+) FROM employees WHERE id").
		WillReturnRows(sqlmock.NewRows(employeeCols).
			AddRow(5, "Mahesh", "9876500000", nil, nil, nil, "No", 0, "Fixed", 18000, 4000, 14000))

	c, rec := newJSONContext(t, http.MethodPost, "/api/employees",
		`{"name":"Mahesh","mobile":"9876500000","salary":18000,"saved":4000}`, "")
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"due":14000`)
	requireMet(t, mock)
}

func TestEmployeeCreateNormalizesEnums(t *testing.T) {
	// Unrecognized enum values fold to the stored defaults before the
	// insert runs.
	e, ok := employeeReq{Name: "Mahesh", Advance: "maybe", SalaryType: "hourly"}.toModel()
	require.True(t, ok)
	assert.Equal(t, "No", e.Advance)
	assert.Equal(t, "Fixed", e.SalaryType)

	e, ok = employeeReq{Name: "Mahesh", Advance: "Yes", SalaryType: "Variable"}.toModel()
	require.True(t, ok)
	assert.Equal(t, "Yes", e.Advance)
	assert.Equal(t, "Variable", e.SalaryType)
}

func TestEmployeeUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewEmployeeHandler(repository.NewEmployeeRepo(db))

	mock.ExpectExec("UPDATE employees SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	c, rec := newJSONContext(t, http.MethodPut, "/api/employees/31",
		`{"name":"Mahesh"}`, "31")
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Employee not found")
	requireMet(t, mock)
}

func TestEmployeeDelete(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewEmployeeHandler(repository.NewEmployeeRepo(db))

	mock.ExpectExec("DELETE FROM employees").
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newJSONContext(t, http.MethodDelete, "/api/employees/5", "", "5")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Employee deleted")
	requireMet(t, mock)
}

func TestEmployeeListSortedByName(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewEmployeeHandler(repository.NewEmployeeRepo(db))

	mock.ExpectQuery("SELECT (.+) FROM employees ORDER BY name ASC").
		WillReturnRows(sqlmock.NewRows(employeeCols).
			AddRow(2, "Anita", nil, nil, nil, nil, "No", 0, "Fixed", 15000, 15000, 0).
			AddRow(1, "Mahesh", nil, nil, nil, nil, "Yes", 2000, "Variable", 18000, 4000, 14000))

	c, rec := newJSONContext(t, http.MethodGet, "/api/employees", "", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Anita"`)
	assert.Contains(t, rec.Body.String(), `"due":14000`)
	requireMet(t, mock)
}

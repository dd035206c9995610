package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/repository"
)

func TestOrderCreateMissingCustomerName(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewOrderHandler(repository.NewOrderRepo(db))

	c, rec := newJSONContext(t, http.MethodPost, "/api/orders",
		`{"customer_name":"  ","mobile_number":"9876500000","permanent_address":"Kota","amount":1200}`, "")
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required order information: customer_name.")
	// Validation rejects before any query runs.
	requireMet(t, mock)
}

func TestOrderCreateZeroAmount(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewOrderHandler(repository.NewOrderRepo(db))

	c, rec := newJSONContext(t, http.MethodPost, "/api/orders",
		`{"customer_name":"Ravi","mobile_number":"9876500000","permanent_address":"Kota","amount":0}`, "")
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "amount (or is zero)")
	requireMet(t, mock)
}

func TestOrderCreateSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewOrderHandler(repository.NewOrderRepo(db))

	mock.ExpectExec("INSERT INTO Orders").
		WillReturnResult(sqlmock.NewResult(41, 1))

	// Amount arrives as a numeric string; blank optionals collapse to NULL.
	c, rec := newJSONContext(t, http.MethodPost, "/api/orders",
		`{"customer_name":"Ravi","mobile_number":"9876500000","permanent_address":"Kota","amount":"1200.50","stone_level":""}`, "")
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order created successfully")
	assert.Contains(t, rec.Body.String(), `"order_id":41`)
	requireMet(t, mock)
}

func TestOrderUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewOrderHandler(repository.NewOrderRepo(db))

	mock.ExpectExec("UPDATE Orders SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	c, rec := newJSONContext(t, http.MethodPut, "/api/orders/99",
		`{"customer_name":"Ravi","mobile_number":"9876500000","permanent_address":"Kota","amount":500}`, "99")
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order not found")
	requireMet(t, mock)
}

func TestOrderListScansDatesAsStrings(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewOrderHandler(repository.NewOrderRepo(db))

	cols := []string{"order_id", "customer_name", "mobile_number", "stone_level", "stone_size",
		"quantity", "area", "delivery_to", "third_party_name", "third_party_mobile",
		"permanent_address", "postal_code", "payment_mode", "amount", "submitted_date", "submitted_time"}
	mock.ExpectQuery("SELECT (.+) FROM Orders ORDER BY order_id DESC").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(7, "Ravi", "9876500000", "Premium", nil, 10, nil, "Self", nil, nil,
				"Kota", nil, "UPI", 1200.5, "2026-08-30", "14:05:00"))

	c, rec := newJSONContext(t, http.MethodGet, "/api/orders", "", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"submitted_date":"2026-08-30"`)
	assert.Contains(t, rec.Body.String(), `"stone_size":null`)
	requireMet(t, mock)
}

func TestOrderDeleteSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewOrderHandler(repository.NewOrderRepo(db))

	mock.ExpectExec("DELETE FROM Orders WHERE order_id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newJSONContext(t, http.MethodDelete, "/api/orders/7", "", "7")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order deleted successfully")
	requireMet(t, mock)
}

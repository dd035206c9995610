package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/repository"
)

func TestQuotationLastIDEmptyTable(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewQuotationHandler(repository.NewQuotationRepo(db))

	mock.ExpectQuery("SELECT MAX\\(id\\) FROM quotations").
		WillReturnRows(sqlmock.NewRows([]string{"last_id"}).AddRow(nil))

	c, rec := newJSONContext(t, http.MethodGet, "/api/quotations/lastId", "", "")
	require.NoError(t, h.LastID(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"last_id":0`)
	requireMet(t, mock)
}

func TestQuotationCreateCommitsTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewQuotationHandler(repository.NewQuotationRepo(db))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO quotations").
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectCommit()

	c, rec := newJSONContext(t, http.MethodPost, "/api/quotations",
		`{"typeOfStone":"Kota Blue","quantity":40,"ratePer":"sqft","rateValue":"18.5","grandTotal":12345.67}`, "")
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Quotation created successfully")
	assert.Contains(t, rec.Body.String(), `"id":21`)
	requireMet(t, mock)
}

func TestQuotationCreateRollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewQuotationHandler(repository.NewQuotationRepo(db))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO quotations").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	c, rec := newJSONContext(t, http.MethodPost, "/api/quotations",
		`{"typeOfStone":"Kota Blue"}`, "")
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error creating quotation")
	requireMet(t, mock)
}

func TestQuotationGetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewQuotationHandler(repository.NewQuotationRepo(db))

	mock.ExpectQuery("SELECT (.+) FROM quotations WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	c, rec := newJSONContext(t, http.MethodGet, "/api/quotations/88", "", "88")
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Quotation with ID 88 not found.")
	requireMet(t, mock)
}

func TestQuotationDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewQuotationHandler(repository.NewQuotationRepo(db))

	mock.ExpectExec("DELETE FROM quotations").
		WillReturnResult(sqlmock.NewResult(0, 0))

	c, rec := newJSONContext(t, http.MethodDelete, "/api/quotations/88", "", "88")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Quotation with ID 88 not found.")
	requireMet(t, mock)
}

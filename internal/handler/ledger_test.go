package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/model"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/repository"
)

func TestBuildLedgerEntrySelfFactoryNullsPartyFields(t *testing.T) {
	e, ok := buildLedgerEntry(ledgerReq{
		StoneLevel:     "Premium",
		Size:           "2x2",
		Quantity:       10,
		To:             "Self",
		ThirdPartyName: "Should Be Dropped",
		MobileNumber:   "9999999999",
		ModeOfPayment:  "Cash",
		Amount:         5000,
	})
	require.True(t, ok)
	assert.Equal(t, model.PartySelfFactory, e.PartyType)
	assert.Nil(t, e.PartyName)
	assert.Nil(t, e.MobileNumber)
	assert.Nil(t, e.ModeOfPayment)
}

func TestBuildLedgerEntryThirdParty(t *testing.T) {
	e, ok := buildLedgerEntry(ledgerReq{
		StoneLevel:     "Premium",
		Size:           "2x2",
		Quantity:       10,
		To:             "Jaipur Depot",
		ThirdPartyName: "Sharma Traders",
		MobileNumber:   "9999999999",
		ModeOfPayment:  "UPI",
		Amount:         5000,
	})
	require.True(t, ok)
	assert.Equal(t, model.PartyThirdParty, e.PartyType)
	require.NotNil(t, e.PartyName)
	assert.Equal(t, "Sharma Traders", *e.PartyName)
}

func TestBuildLedgerEntryRejectsZeroQuantity(t *testing.T) {
	_, ok := buildLedgerEntry(ledgerReq{
		StoneLevel: "Premium", Size: "2x2", Quantity: 0, To: "Self", Amount: 100,
	})
	assert.False(t, ok)
}

func TestLedgerCreateAssignsTransactionDate(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewLedgerHandler(repository.NewLedgerRepo(db))

	mock.ExpectExec("INSERT INTO mines_ledger").
		WillReturnResult(sqlmock.NewResult(13, 1))

	c, rec := newJSONContext(t, http.MethodPost, "/api/ledger",
		`{"stoneLevel":"Premium","size":"2x2","quantity":4,"to":"Self","amount":900}`, "")
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Transaction successfully created.")
	assert.Contains(t, rec.Body.String(), `"id":13`)
	requireMet(t, mock)
}

func TestLedgerCreateMissingFields(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewLedgerHandler(repository.NewLedgerRepo(db))

	c, rec := newJSONContext(t, http.MethodPost, "/api/ledger",
		`{"stoneLevel":"","size":"2x2","quantity":4,"amount":900}`, "")
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required fields: stoneLevel, size, quantity, and amount.")
	requireMet(t, mock)
}

func TestLedgerListWrapsPayload(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewLedgerHandler(repository.NewLedgerRepo(db))

	cols := []string{"id", "transaction_date", "stone_level", "size", "quantity",
		"area_location", "party_type", "party_name", "mobile_number", "mode_of_payment", "amount"}
	mock.ExpectQuery("SELECT (.+) FROM mines_ledger ORDER BY transaction_date DESC, id DESC").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(3, "2026-08-28", "Premium", "2x2", 4, nil, "Self Factory", nil, nil, nil, 900))

	c, rec := newJSONContext(t, http.MethodGet, "/api/ledger", "", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Transactions successfully fetched.")
	assert.Contains(t, rec.Body.String(), `"party_type":"Self Factory"`)
	requireMet(t, mock)
}

func TestLedgerDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewLedgerHandler(repository.NewLedgerRepo(db))

	mock.ExpectExec("DELETE FROM mines_ledger").
		WillReturnResult(sqlmock.NewResult(0, 0))

	c, rec := newJSONContext(t, http.MethodDelete, "/api/ledger/44", "", "44")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Transaction ID not found for deletion.")
	requireMet(t, mock)
}

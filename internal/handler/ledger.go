package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/model"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/repository"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/utils"
)

// LedgerHandler serves the bearer-gated /api/ledger CRUD family over the
// mines ledger.
type LedgerHandler struct {
	Ledger *repository.LedgerRepo
}

func NewLedgerHandler(r *repository.LedgerRepo) *LedgerHandler { return &LedgerHandler{Ledger: r} }

// ledgerReq is the camelCase write payload the ledger screens send.
type ledgerReq struct {
	StoneLevel     string `json:"stoneLevel"`
	Size           string `json:"size"`
	Quantity       any    `json:"quantity"`
	Area           string `json:"area"`
	To             string `json:"to"`
	ThirdPartyName string `json:"thirdPartyName"`
	MobileNumber   string `json:"mobileNumber"`
	ModeOfPayment  string `json:"modeOfPayment"`
	Amount         any    `json:"amount"`
}

// buildLedgerEntry derives the party type from the delivery target and
// nulls out the third-party columns for Self Factory rows no matter what
// the client submitted for them.  Returns false when a required field is
// missing or zero after coercion.
func buildLedgerEntry(req ledgerReq) (model.LedgerEntry, bool) {
	e := model.LedgerEntry{
		StoneLevel:   req.StoneLevel,
		Size:         req.Size,
		Quantity:     utils.CleanNumber(req.Quantity),
		AreaLocation: utils.CleanString(req.Area),
		PartyType:    model.DerivePartyType(req.To),
		Amount:       utils.CleanNumber(req.Amount),
	}
	if e.PartyType == model.PartyThirdParty {
		e.PartyName = utils.CleanString(req.ThirdPartyName)
		e.MobileNumber = utils.CleanString(req.MobileNumber)
		e.ModeOfPayment = utils.CleanString(req.ModeOfPayment)
	}
	if req.StoneLevel == "" || req.Size == "" || e.Quantity == 0 || e.Amount == 0 {
		return e, false
	}
	return e, true
}

// List handles GET /api/ledger.  Responses are wrapped in {message, data}
// as the ledger screens expect.
func (h *LedgerHandler) List(c echo.Context) error {
	entries, err := h.Ledger.List(c.Request().Context())
	if err != nil {
		log.Printf("Database Error during READ operation: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "An internal server error occurred while fetching transactions."})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Transactions successfully fetched.",
		"data":    entries,
	})
}

// Get handles GET /api/ledger/:id.
func (h *LedgerHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Transaction ID not found."})
	}
	e, err := h.Ledger.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Transaction ID not found."})
		}
		log.Printf("Database Error during READ operation: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "An internal server error occurred while fetching the transaction."})
	}
	return c.JSON(http.StatusOK, e)
}

// Create handles POST /api/ledger.  The transaction date is assigned
// server-side (today, YYYY-MM-DD); client-supplied dates are ignored.
func (h *LedgerHandler) Create(c echo.Context) error {
	var req ledgerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	e, ok := buildLedgerEntry(req)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing required fields: stoneLevel, size, quantity, and amount."})
	}
	e.TransactionDate = time.Now().UTC().Format("2006-01-02")

	id, err := h.Ledger.Create(c.Request().Context(), e)
	if err != nil {
		log.Printf("Database Error during CREATE operation: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "An internal server error occurred while creating the transaction."})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Transaction successfully created.",
		"id":      id,
	})
}

// Update handles PUT /api/ledger/:id.  The original transaction date is
// preserved; everything else is replaced, with the party-type derivation
// re-applied.
func (h *LedgerHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Transaction ID not found for update."})
	}
	var req ledgerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	e, okReq := buildLedgerEntry(req)
	if !okReq {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing required fields for update."})
	}

	if err := h.Ledger.Update(c.Request().Context(), id, e); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Transaction ID not found for update."})
		}
		log.Printf("Database Error during UPDATE operation: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "An internal server error occurred while updating the transaction."})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Transaction successfully updated.",
		"id":      id,
	})
}

// Delete handles DELETE /api/ledger/:id.
func (h *LedgerHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Transaction ID not found for deletion."})
	}
	if err := h.Ledger.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Transaction ID not found for deletion."})
		}
		log.Printf("Database Error during DELETE operation: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "An internal server error occurred while deleting the transaction."})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Transaction successfully deleted.",
		"id":      id,
	})
}

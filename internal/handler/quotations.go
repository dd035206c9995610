package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/model"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/repository"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/utils"
)

// QuotationHandler serves the wide quotation records.  The financial
// totals arrive precomputed by the client and are stored verbatim; the
// server guarantees atomicity of the write, not the arithmetic.
type QuotationHandler struct {
	Quotations *repository.QuotationRepo
}

func NewQuotationHandler(quotations *repository.QuotationRepo) *QuotationHandler {
	return &QuotationHandler{Quotations: quotations}
}

// quotationReq binds the camelCase payload the quotation form submits.
// Numeric fields arrive as numbers or numeric strings, so they bind as
// any and go through CleanNumber.
type quotationReq struct {
	TypeOfStone         string `json:"typeOfStone"`
	StatusOfStone       string `json:"statusOfStone"`
	Size                string `json:"size"`
	Quantity            any    `json:"quantity"`
	Thickness           string `json:"thickness"`
	RatePer             string `json:"ratePer"`
	RateValue           any    `json:"rateValue"`
	GSTPercent          any    `json:"gstPercent"`
	OwnerName           string `json:"ownerName"`
	CompanyName         string `json:"companyName"`
	MobileNo            string `json:"mobileNo"`
	EmailAddress        string `json:"emailAddress"`
	Address             string `json:"address"`
	EstimatedWeight     any    `json:"estimatedWeight"`
	Quintals            any    `json:"quintals"`
	Tonnes              any    `json:"tonnes"`
	SelectedState       string `json:"selectedState"`
	SelectedDistrict    string `json:"selectedDistrict"`
	SelectedCity        string `json:"selectedCity"`
	FreightRate         any    `json:"freightRate"`
	FreightCost         any    `json:"freightCost"`
	InvoiceNo           string `json:"invoiceNo"`
	Date                string `json:"date"`
	CustomerName        string `json:"customerName"`
	CustomerMobileNo    string `json:"customerMobileNo"`
	PermanentAddress    string `json:"permanentAddress"`
	PostalCode          string `json:"postalCode"`
	CustomerGST         string `json:"customerGst"`
	SubTotal            any    `json:"subTotal"`
	GSTAmount           any    `json:"gstAmount"`
	TotalWithoutFreight any    `json:"totalWithoutFreight"`
	FreightCharges      any    `json:"freightCharges"`
	GrandTotal          any    `json:"grandTotal"`
}

func (req quotationReq) toModel() model.Quotation {
	return model.Quotation{
		TypeOfStone:         utils.CleanString(req.TypeOfStone),
		StatusOfStone:       utils.CleanString(req.StatusOfStone),
		Size:                utils.CleanString(req.Size),
		Quantity:            utils.CleanNumber(req.Quantity),
		Thickness:           utils.CleanString(req.Thickness),
		RatePer:             utils.CleanString(req.RatePer),
		RateValue:           utils.CleanNumber(req.RateValue),
		GSTPercent:          utils.CleanNumber(req.GSTPercent),
		OwnerName:           utils.CleanString(req.OwnerName),
		CompanyName:         utils.CleanString(req.CompanyName),
		MobileNo:            utils.CleanString(req.MobileNo),
		EmailAddress:        utils.CleanString(req.EmailAddress),
		Address:             utils.CleanString(req.Address),
		EstimatedWeight:     utils.CleanNumber(req.EstimatedWeight),
		Quintals:            utils.CleanNumber(req.Quintals),
		Tonnes:              utils.CleanNumber(req.Tonnes),
		SelectedState:       utils.CleanString(req.SelectedState),
		SelectedDistrict:    utils.CleanString(req.SelectedDistrict),
		SelectedCity:        utils.CleanString(req.SelectedCity),
		FreightRate:         utils.CleanNumber(req.FreightRate),
		FreightCost:         utils.CleanNumber(req.FreightCost),
		InvoiceNo:           utils.CleanString(req.InvoiceNo),
		Date:                utils.CleanString(req.Date),
		CustomerName:        utils.CleanString(req.CustomerName),
		CustomerMobileNo:    utils.CleanString(req.CustomerMobileNo),
		PermanentAddress:    utils.CleanString(req.PermanentAddress),
		PostalCode:          utils.CleanString(req.PostalCode),
		CustomerGST:         utils.CleanString(req.CustomerGST),
		SubTotal:            utils.CleanNumber(req.SubTotal),
		GSTAmount:           utils.CleanNumber(req.GSTAmount),
		TotalWithoutFreight: utils.CleanNumber(req.TotalWithoutFreight),
		FreightCharges:      utils.CleanNumber(req.FreightCharges),
		GrandTotal:          utils.CleanNumber(req.GrandTotal),
	}
}

func quotationNotFound(id uint64) echo.Map {
	return echo.Map{"message": fmt.Sprintf("Quotation with ID %d not found.", id)}
}

// List handles GET /api/quotations.
func (h *QuotationHandler) List(c echo.Context) error {
	rows, err := h.Quotations.List(c.Request().Context())
	if err != nil {
		log.Printf("Fetch All Quotations Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching quotations"})
	}
	return c.JSON(http.StatusOK, rows)
}

// LastID handles GET /api/quotations/lastId; an empty table yields 0.
func (h *QuotationHandler) LastID(c echo.Context) error {
	id, err := h.Quotations.LastID(c.Request().Context())
	if err != nil {
		log.Printf("Fetch Last ID Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching last quotation ID"})
	}
	return c.JSON(http.StatusOK, echo.Map{"last_id": id})
}

// Get handles GET /api/quotations/:id.
func (h *QuotationHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, quotationNotFound(id))
	}
	q, err := h.Quotations.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, quotationNotFound(id))
		}
		log.Printf("Fetch Single Quotation Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching quotation"})
	}
	return c.JSON(http.StatusOK, q)
}

// Create handles POST /api/quotations.  The insert runs inside a
// transaction so a partially written quotation can never surface.
func (h *QuotationHandler) Create(c echo.Context) error {
	var req quotationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	id, err := h.Quotations.Create(c.Request().Context(), req.toModel())
	if err != nil {
		log.Printf("Create Quotation Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error creating quotation"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Quotation created successfully", "id": id})
}

// Update handles PUT /api/quotations/:id with full-record replacement.
func (h *QuotationHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, quotationNotFound(id))
	}
	var req quotationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if err := h.Quotations.Update(c.Request().Context(), id, req.toModel()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, quotationNotFound(id))
		}
		log.Printf("Update Quotation Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error updating quotation"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Quotation updated successfully"})
}

// Delete handles DELETE /api/quotations/:id.
func (h *QuotationHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, quotationNotFound(id))
	}
	if err := h.Quotations.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, quotationNotFound(id))
		}
		log.Printf("Delete Quotation Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error deleting quotation"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Quotation deleted successfully"})
}

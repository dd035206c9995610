package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/model"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/repository"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/utils"
)

// OrderHandler serves the /api/orders CRUD family.
type OrderHandler struct {
	Orders *repository.OrderRepo
}

func NewOrderHandler(r *repository.OrderRepo) *OrderHandler { return &OrderHandler{Orders: r} }

// orderReq is the flat write payload.  Numeric fields are typed any so
// that clients sending "1200" and 1200 are treated the same way.
type orderReq struct {
	CustomerName     string `json:"customer_name"`
	MobileNumber     string `json:"mobile_number"`
	StoneLevel       string `json:"stone_level"`
	StoneSize        string `json:"stone_size"`
	Quantity         any    `json:"quantity"`
	Area             string `json:"area"`
	DeliveryTo       string `json:"delivery_to"`
	ThirdPartyName   string `json:"third_party_name"`
	ThirdPartyMobile string `json:"third_party_mobile"`
	PermanentAddress string `json:"permanent_address"`
	PostalCode       string `json:"postal_code"`
	PaymentMode      string `json:"payment_mode"`
	Amount           any    `json:"amount"`
}

// sanitizeOrder normalizes the payload and reports the first missing
// required field, empty string when the record is valid.  The amount
// check runs after coercion: an unparsable amount and a zero amount are
// rejected the same way.
func sanitizeOrder(req orderReq) (model.Order, string) {
	o := model.Order{
		Quantity:         utils.CleanNumber(req.Quantity),
		Amount:           utils.CleanNumber(req.Amount),
		StoneLevel:       utils.CleanString(req.StoneLevel),
		StoneSize:        utils.CleanString(req.StoneSize),
		Area:             utils.CleanString(req.Area),
		DeliveryTo:       utils.CleanString(req.DeliveryTo),
		PaymentMode:      utils.CleanString(req.PaymentMode),
		PostalCode:       utils.CleanString(req.PostalCode),
		ThirdPartyName:   utils.CleanString(req.ThirdPartyName),
		ThirdPartyMobile: utils.CleanString(req.ThirdPartyMobile),
	}

	switch {
	case utils.CleanString(req.CustomerName) == nil:
		return o, "customer_name"
	case utils.CleanString(req.MobileNumber) == nil:
		return o, "mobile_number"
	case utils.CleanString(req.PermanentAddress) == nil:
		return o, "permanent_address"
	case o.Amount <= 0:
		return o, "amount (or is zero)"
	}
	o.CustomerName = req.CustomerName
	o.MobileNumber = req.MobileNumber
	o.PermanentAddress = req.PermanentAddress
	return o, ""
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.Orders.List(c.Request().Context())
	if err != nil {
		log.Printf("Fetch Orders Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching orders"})
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
	}
	o, err := h.Orders.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
		}
		log.Printf("Fetch Order Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching order"})
	}
	return c.JSON(http.StatusOK, o)
}

// Create handles POST /api/orders.  Validation runs entirely before any
// database call: a rejected request performs no mutation.
func (h *OrderHandler) Create(c echo.Context) error {
	var req orderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	o, missing := sanitizeOrder(req)
	if missing != "" {
		log.Printf("Validation Error: Required field [%s] is missing or empty after cleanup.", missing)
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Missing required order information: " + missing + ".",
		})
	}

	id, err := h.Orders.Create(c.Request().Context(), o)
	if err != nil {
		log.Printf("Create Order Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error creating order"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Order created successfully",
		"order_id": id,
	})
}

// Update handles PUT /api/orders/:id with the same validation as Create
// applied to the full replacement record.
func (h *OrderHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
	}
	var req orderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	o, missing := sanitizeOrder(req)
	if missing != "" {
		log.Printf("Validation Error on Update: Required field [%s] is missing or empty after cleanup.", missing)
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Missing required update information: " + missing + ".",
		})
	}

	if err := h.Orders.Update(c.Request().Context(), id, o); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
		}
		log.Printf("Update Order Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error updating order"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Order updated successfully"})
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
	}
	if err := h.Orders.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
		}
		log.Printf("Delete Order Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error deleting order"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Order deleted successfully"})
}

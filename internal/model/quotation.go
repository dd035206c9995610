package model

// Quotation mirrors the `quotations` table: a wide record capturing a
// priced stone quotation exactly as the client computed it.  The financial
// fields (SubTotal, GSTAmount, TotalWithoutFreight, FreightCharges,
// GrandTotal) are stored verbatim; the server performs no recomputation or
// arithmetic validation.  That trust boundary is deliberate and documented
// in the quotation handler.
type Quotation struct {
	ID                  uint64  `json:"id"`
	TypeOfStone         *string `json:"type_of_stone"`
	StatusOfStone       *string `json:"status_of_stone"`
	Size                *string `json:"size"`
	Quantity            float64 `json:"quantity"`
	Thickness           *string `json:"thickness"`
	RatePer             *string `json:"rate_per"`
	RateValue           float64 `json:"rate_value"`
	GSTPercent          float64 `json:"gst_percent"`
	OwnerName           *string `json:"owner_name"`
	CompanyName         *string `json:"company_name"`
	MobileNo            *string `json:"mobile_no"`
	EmailAddress        *string `json:"email_address"`
	Address             *string `json:"address"`
	EstimatedWeight     float64 `json:"estimated_weight"`
	Quintals            float64 `json:"quintals"`
	Tonnes              float64 `json:"tonnes"`
	SelectedState       *string `json:"selected_state"`
	SelectedDistrict    *string `json:"selected_district"`
	SelectedCity        *string `json:"selected_city"`
	FreightRate         float64 `json:"freight_rate"`
	FreightCost         float64 `json:"freight_cost"`
	InvoiceNo           *string `json:"invoice_no"`
	Date                *string `json:"date"`
	CustomerName        *string `json:"customer_name"`
	CustomerMobileNo    *string `json:"customer_mobile_no"`
	PermanentAddress    *string `json:"permanent_address"`
	PostalCode          *string `json:"postal_code"`
	CustomerGST         *string `json:"customer_gst"`
	SubTotal            float64 `json:"sub_total"`
	GSTAmount           float64 `json:"gst_amount"`
	TotalWithoutFreight float64 `json:"total_without_freight"`
	FreightCharges      float64 `json:"freight_charges"`
	GrandTotal          float64 `json:"grand_total"`
}

package model

// Order mirrors the `Orders` table: a customer order for stone product.
// Optional fields are pointers so absent values round-trip as SQL NULL and
// JSON null.  The submitted date and time stamps are assigned by the
// database at insert and never accepted from the client.
type Order struct {
	ID               uint64  `json:"order_id"`
	CustomerName     string  `json:"customer_name"`
	MobileNumber     string  `json:"mobile_number"`
	StoneLevel       *string `json:"stone_level"`
	StoneSize        *string `json:"stone_size"`
	Quantity         float64 `json:"quantity"`
	Area             *string `json:"area"`
	DeliveryTo       *string `json:"delivery_to"`
	ThirdPartyName   *string `json:"third_party_name"`
	ThirdPartyMobile *string `json:"third_party_mobile"`
	PermanentAddress string  `json:"permanent_address"`
	PostalCode       *string `json:"postal_code"`
	PaymentMode      *string `json:"payment_mode"`
	Amount           float64 `json:"amount"`
	SubmittedDate    string  `json:"submitted_date"`
	SubmittedTime    string  `json:"submitted_time"`
}

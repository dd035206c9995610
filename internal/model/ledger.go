package model

// PartyType values derived from the "to" field of a ledger write.  A
// delivery target of "Self" means the stone went to the company's own
// factory; anything else is a third-party sale.
const (
	PartySelfFactory = "Self Factory"
	PartyThirdParty  = "Third Party"
)

// LedgerEntry mirrors the `mines_ledger` table: one stone transaction at
// the mines.  The party-specific columns (PartyName, MobileNumber,
// ModeOfPayment) are NULL whenever PartyType is "Self Factory", regardless
// of what the client submitted.
type LedgerEntry struct {
	ID              uint64  `json:"id"`
	TransactionDate string  `json:"transaction_date"`
	StoneLevel      string  `json:"stone_level"`
	Size            string  `json:"size"`
	Quantity        float64 `json:"quantity"`
	AreaLocation    *string `json:"area_location"`
	PartyType       string  `json:"party_type"`
	PartyName       *string `json:"party_name"`
	MobileNumber    *string `json:"mobile_number"`
	ModeOfPayment   *string `json:"mode_of_payment"`
	Amount          float64 `json:"amount"`
}

// DerivePartyType implements the classification rule for ledger writes.
func DerivePartyType(to string) string {
	if to == "Self" {
		return PartySelfFactory
	}
	return PartyThirdParty
}

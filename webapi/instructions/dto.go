package instructions

// ProcessRequest is the request envelope for POST /payment-instructions.
// Envelope-shape validation (field presence and types) happens here; the
// transfer core assumes a well-shaped envelope and applies the business
// rules itself, including the exactly-two-accounts rule.
type ProcessRequest struct {
	Accounts    []AccountPayload `json:"accounts" validate:"required,dive"`
	Instruction string           `json:"instruction" validate:"required"`
}

// AccountPayload is one account in the request envelope. Balance is a
// pointer so a zero balance and an absent field stay distinguishable.
type AccountPayload struct {
	ID       string   `json:"id" validate:"required"`
	Balance  *float64 `json:"balance" validate:"required"`
	Currency string   `json:"currency" validate:"required"`
}

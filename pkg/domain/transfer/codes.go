package transfer

// Status values carried on every transfer result.
const (
	StatusSuccessful = "successful"
	StatusPending    = "pending"
	StatusFailed     = "failed"
)

// Outcome codes for accepted transfers.
const (
	CodeExecuted = "AP00"
	CodePending  = "AP02"
)

// Validation error codes, in the order the rule chain checks them.
const (
	CodeBadAccountID        = "AC04"
	CodeBadAmount           = "AM01"
	CodeBadDate             = "DT01"
	CodeAccountNotFound     = "AC05"
	CodeInsufficientFunds   = "AC01"
	CodeSameAccount         = "AC02"
	CodeUnsupportedCurrency = "CU02"
	CodeAccountCount        = "AC03"
	CodeCurrencyMismatch    = "CU01"
)

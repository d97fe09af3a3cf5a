// Package instruction parses plaintext payment instructions such as
//
//	DEBIT 100 USD FROM ACCOUNT A123 FOR CREDIT TO ACCOUNT B456 ON 2025-01-01
//
// into a typed transfer intent. Parsing is two-phase: a lexer normalizes and
// tokenizes the raw text, then a matcher checks the token sequence against a
// fixed keyword-slot template for the instruction kind. Business rules
// (amount, funds, currency) are not applied here; see the transfer package.
package instruction

// Kind identifies the instruction type, taken from the leading token.
type Kind string

const (
	KindDebit  Kind = "DEBIT"
	KindCredit Kind = "CREDIT"
)

// Parsed is the typed transfer intent produced by Parse. It is a pure
// reading of the instruction text: Amount may be NaN and Date may be any
// trailing text; both are judged by the validator, not the parser.
type Parsed struct {
	Kind                 Kind
	Amount               float64
	Currency             string
	SourceAccountID      string
	DestinationAccountID string

	// Date is the raw text after the ON keyword. HasDate distinguishes an
	// absent clause from "ON" followed by nothing.
	Date    string
	HasDate bool
}

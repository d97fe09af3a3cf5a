package transfer

import "github.com/payflowhq/payflow/pkg/domain/account"

// Result is the sole output of processing one payment instruction. The
// transaction fields are pointers so a failed result serializes them as
// null, matching the wire contract.
type Result struct {
	Type          *string  `json:"type"`
	Amount        *float64 `json:"amount"`
	Currency      *string  `json:"currency"`
	DebitAccount  *string  `json:"debit_account"`
	CreditAccount *string  `json:"credit_account"`
	ExecuteBy     *string  `json:"execute_by"`
	Status        string   `json:"status"`
	StatusReason  string   `json:"status_reason"`
	StatusCode    string   `json:"status_code"`

	// Accounts mirrors the caller's positional order. Empty (not absent) on
	// failure.
	Accounts []ResultAccount `json:"accounts"`
}

// ResultAccount is an account snapshot embedded in a result, carrying the
// balance observed before processing alongside the (possibly mutated)
// current balance.
type ResultAccount struct {
	ID            string  `json:"id"`
	Balance       float64 `json:"balance"`
	BalanceBefore float64 `json:"balance_before"`
	Currency      string  `json:"currency"`
}

// SnapshotAccount captures a result entry for a, recording balanceBefore as
// observed at the start of processing.
func SnapshotAccount(a *account.Account, balanceBefore float64) ResultAccount {
	return ResultAccount{
		ID:            a.ID,
		Balance:       a.Balance,
		BalanceBefore: balanceBefore,
		Currency:      a.Currency,
	}
}

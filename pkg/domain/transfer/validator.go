package transfer

import (
	"fmt"
	"math"

	"github.com/payflowhq/payflow/pkg/currency"
	"github.com/payflowhq/payflow/pkg/dates"
	"github.com/payflowhq/payflow/pkg/domain/account"
	"github.com/payflowhq/payflow/pkg/instruction"
)

// Validator applies the ordered business rule chain to a parsed instruction
// and the caller-supplied accounts.
type Validator struct {
	currencies *currency.Registry
}

// NewValidator creates a validator backed by the given currency registry.
func NewValidator(currencies *currency.Registry) *Validator {
	return &Validator{currencies: currencies}
}

// Validate runs the rule chain against parsed and accounts. On success it
// returns the resolved source and destination account records (the caller's
// records, not copies) for the orchestrator to mutate.
//
// Rule order is fixed and observable: every rule runs, but only the first
// failure is returned. The exception is the account-count rule, which when
// violated is returned alone and suppresses the currency-match rules — there
// is no meaningful currency comparison without exactly two accounts.
func (v *Validator) Validate(
	parsed instruction.Parsed,
	accounts []*account.Account,
) (source, destination *account.Account, err error) {
	source, sourceFound := account.Find(accounts, parsed.SourceAccountID)
	destination, destinationFound := account.Find(accounts, parsed.DestinationAccountID)

	var firstErr *ValidationError
	collect := func(e *ValidationError) {
		if e != nil && firstErr == nil {
			firstErr = e
		}
	}

	collect(checkIDCharset(parsed.SourceAccountID))
	collect(checkIDCharset(parsed.DestinationAccountID))
	collect(checkAmount(parsed.Amount))
	collect(checkDate(parsed))
	collect(checkResolved(parsed.SourceAccountID, sourceFound))
	collect(checkResolved(parsed.DestinationAccountID, destinationFound))
	if sourceFound {
		collect(checkFunds(source, parsed.Amount))
	}
	collect(checkDistinct(parsed))
	collect(v.checkSupportedCurrency(parsed.Currency))

	if len(accounts) != 2 {
		return nil, nil, &ValidationError{
			Code:   CodeAccountCount,
			Reason: fmt.Sprintf("expected exactly 2 accounts, got %d", len(accounts)),
		}
	}

	if sourceFound {
		collect(checkAccountCurrency(source, parsed.Currency))
	}
	if destinationFound {
		collect(checkAccountCurrency(destination, parsed.Currency))
	}

	if firstErr != nil {
		return nil, nil, firstErr
	}
	return source, destination, nil
}

func checkIDCharset(id string) *ValidationError {
	if account.ValidID(id) {
		return nil
	}
	return &ValidationError{
		Code:   CodeBadAccountID,
		Reason: fmt.Sprintf("account identifier %q contains invalid characters", id),
	}
}

// checkAmount accepts finite, strictly positive whole numbers. Fractional
// amounts are rejected, never rounded.
func checkAmount(amount float64) *ValidationError {
	valid := !math.IsNaN(amount) && !math.IsInf(amount, 0) &&
		amount > 0 && amount == math.Trunc(amount)
	if valid {
		return nil
	}
	return &ValidationError{
		Code:   CodeBadAmount,
		Reason: fmt.Sprintf("amount %v is not a positive whole number", amount),
	}
}

// checkDate only judges the shape of a supplied date; calendar correctness
// is out of scope and a future-date decision belongs to the orchestrator.
func checkDate(parsed instruction.Parsed) *ValidationError {
	if !parsed.HasDate || dates.IsValidFormat(parsed.Date) {
		return nil
	}
	return &ValidationError{
		Code:   CodeBadDate,
		Reason: fmt.Sprintf("date %q is not in YYYY-MM-DD format", parsed.Date),
	}
}

func checkResolved(id string, found bool) *ValidationError {
	if found {
		return nil
	}
	return &ValidationError{
		Code:   CodeAccountNotFound,
		Reason: fmt.Sprintf("account %q not found in supplied accounts", id),
	}
}

// checkFunds requires sufficient balance at validation time even for
// future-dated transfers; there is no re-check at execution time.
func checkFunds(source *account.Account, amount float64) *ValidationError {
	if source.Balance >= amount {
		return nil
	}
	return &ValidationError{
		Code: CodeInsufficientFunds,
		Reason: fmt.Sprintf("account %q balance %v is below amount %v",
			source.ID, source.Balance, amount),
	}
}

func checkDistinct(parsed instruction.Parsed) *ValidationError {
	if parsed.SourceAccountID != parsed.DestinationAccountID {
		return nil
	}
	return &ValidationError{
		Code:   CodeSameAccount,
		Reason: fmt.Sprintf("source and destination are both %q", parsed.SourceAccountID),
	}
}

func (v *Validator) checkSupportedCurrency(code string) *ValidationError {
	if v.currencies.IsSupported(code) {
		return nil
	}
	return &ValidationError{
		Code:   CodeUnsupportedCurrency,
		Reason: fmt.Sprintf("currency %q is not supported", code),
	}
}

func checkAccountCurrency(a *account.Account, code string) *ValidationError {
	if a.Currency == code {
		return nil
	}
	return &ValidationError{
		Code: CodeCurrencyMismatch,
		Reason: fmt.Sprintf("account %q holds %s, transaction is in %s",
			a.ID, a.Currency, code),
	}
}

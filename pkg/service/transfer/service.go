// Package transfer composes the instruction grammar, the business rule
// chain and the date rules into the full processing pipeline for one
// payment instruction.
package transfer

import (
	"errors"
	"log/slog"
	"time"

	"github.com/payflowhq/payflow/pkg/catalog"
	"github.com/payflowhq/payflow/pkg/currency"
	"github.com/payflowhq/payflow/pkg/dates"
	"github.com/payflowhq/payflow/pkg/domain/account"
	"github.com/payflowhq/payflow/pkg/domain/transfer"
	"github.com/payflowhq/payflow/pkg/instruction"
)

// Request is one processing invocation: the caller's account snapshot and
// the raw instruction text. The service takes temporary ownership of the
// account records for the duration of the call; on immediate execution they
// are mutated in place and returned embedded in the result. Persisting any
// mutation is the caller's concern.
type Request struct {
	Accounts    []*account.Account
	Instruction string
}

// Service is the transfer orchestrator. It is stateless across calls and
// safe for concurrent use as long as callers do not share account records
// between concurrent requests.
type Service struct {
	validator *transfer.Validator
	catalog   *catalog.Catalog
	logger    *slog.Logger
	clock     func() time.Time
}

// New creates a transfer service using the given currency registry and
// message catalog.
func New(
	currencies *currency.Registry,
	cat *catalog.Catalog,
	logger *slog.Logger,
) *Service {
	return &Service{
		validator: transfer.NewValidator(currencies),
		catalog:   cat,
		logger:    logger,
		clock:     time.Now,
	}
}

// Process runs one instruction through parse, validation and settlement.
//
// A well-formed, valid instruction with no future date debits the source
// and credits the destination in place and yields a successful (AP00)
// result. A future ON date yields a pending (AP02) result with both
// balances untouched. Any syntax or validation failure returns a
// *transfer.InvalidDataError whose payload is the failed-shape result.
func (s *Service) Process(req Request) (transfer.Result, error) {
	balancesBefore := make([]float64, len(req.Accounts))
	for i, a := range req.Accounts {
		if a != nil {
			balancesBefore[i] = a.Balance
		}
	}

	parsed, err := instruction.Parse(req.Instruction)
	if err != nil {
		var synErr *instruction.SyntaxError
		if errors.As(err, &synErr) {
			return transfer.Result{}, s.fail(synErr.Code, err)
		}
		return transfer.Result{}, err
	}

	source, destination, err := s.validator.Validate(parsed, req.Accounts)
	if err != nil {
		var valErr *transfer.ValidationError
		if errors.As(err, &valErr) {
			return transfer.Result{}, s.fail(valErr.Code, err)
		}
		return transfer.Result{}, err
	}

	if parsed.HasDate && dates.IsFuture(parsed.Date, s.clock()) {
		s.logger.Info("transfer accepted for future execution",
			"source", source.ID,
			"destination", destination.ID,
			"amount", parsed.Amount,
			"currency", parsed.Currency,
			"execute_by", parsed.Date,
		)
		return s.accepted(parsed, req.Accounts, balancesBefore,
			transfer.StatusPending, transfer.CodePending), nil
	}

	source.Balance -= parsed.Amount
	destination.Balance += parsed.Amount

	s.logger.Info("transfer executed",
		"source", source.ID,
		"destination", destination.ID,
		"amount", parsed.Amount,
		"currency", parsed.Currency,
	)
	return s.accepted(parsed, req.Accounts, balancesBefore,
		transfer.StatusSuccessful, transfer.CodeExecuted), nil
}

// accepted builds the success-path result. The debit/credit fields follow
// the caller's positional account order, not the resolved source and
// destination; they coincide only when the caller supplies accounts in
// source-then-destination order.
func (s *Service) accepted(
	parsed instruction.Parsed,
	accounts []*account.Account,
	balancesBefore []float64,
	status, code string,
) transfer.Result {
	kind := string(parsed.Kind)
	result := transfer.Result{
		Type:         &kind,
		Amount:       &parsed.Amount,
		Currency:     &parsed.Currency,
		Status:       status,
		StatusReason: s.catalog.Reason(code),
		StatusCode:   code,
		Accounts:     make([]transfer.ResultAccount, 0, len(accounts)),
	}
	if len(accounts) == 2 {
		result.DebitAccount = &accounts[0].ID
		result.CreditAccount = &accounts[1].ID
	}
	if parsed.HasDate {
		result.ExecuteBy = &parsed.Date
	}
	for i, a := range accounts {
		result.Accounts = append(result.Accounts, transfer.SnapshotAccount(a, balancesBefore[i]))
	}
	return result
}

// fail wraps a rejection into the structured failure shape: nulled
// transaction fields, status "failed", the originating code and its catalog
// reason, and an empty accounts list.
func (s *Service) fail(code string, cause error) error {
	reason := s.catalog.Reason(code)
	s.logger.Warn("transfer rejected", "status_code", code, "reason", reason)
	return &transfer.InvalidDataError{
		Payload: transfer.Result{
			Status:       transfer.StatusFailed,
			StatusReason: reason,
			StatusCode:   code,
			Accounts:     []transfer.ResultAccount{},
		},
		Cause: cause,
	}
}

// Package instructions exposes the payment-instruction processing endpoint.
package instructions

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/payflowhq/payflow/pkg/domain/account"
	"github.com/payflowhq/payflow/pkg/domain/transfer"
	transfersvc "github.com/payflowhq/payflow/pkg/service/transfer"
	"github.com/payflowhq/payflow/webapi/common"
)

// Routes registers the payment-instruction endpoint.
//
//   - POST /payment-instructions : parse, validate and settle one instruction
func Routes(app *fiber.App, svc *transfersvc.Service, logger *slog.Logger) {
	app.Post("/payment-instructions", Process(svc, logger))
}

// Process returns the Fiber handler for one payment instruction. The
// request carries the two involved accounts and the raw instruction text;
// the response is the transfer result, or the failed-shape payload with
// HTTP 400 when the instruction is rejected.
func Process(svc *transfersvc.Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ProcessRequest](c)
		if input == nil {
			return err // error response already written
		}

		accounts := make([]*account.Account, 0, len(input.Accounts))
		for _, a := range input.Accounts {
			accounts = append(accounts, &account.Account{
				ID:       a.ID,
				Balance:  *a.Balance,
				Currency: a.Currency,
			})
		}

		result, err := svc.Process(transfersvc.Request{
			Accounts:    accounts,
			Instruction: input.Instruction,
		})
		if err != nil {
			var invalid *transfer.InvalidDataError
			if errors.As(err, &invalid) {
				return common.FailedResponseJSON(
					c, fiber.StatusBadRequest, "Transaction failed", invalid.Payload)
			}
			logger.Error("processing instruction", "error", err)
			return fiber.ErrInternalServerError
		}

		return common.SuccessResponseJSON(c, result.StatusReason, result)
	}
}

// Package common holds the shared request/response plumbing for the web
// API: the response envelope and generic bind-and-validate helper.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Envelope statuses.
const (
	StatusSuccessful = "successful"
	StatusFailed     = "failed"
)

// Response is the standard API response envelope.
type Response struct {
	Status  string `json:"status"`         // successful | failed
	Message string `json:"message"`        // Human-readable summary
	Data    any    `json:"data,omitempty"` // Response payload
}

// SuccessResponseJSON writes a 200 envelope around data.
func SuccessResponseJSON(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Status:  StatusSuccessful,
		Message: message,
		Data:    data,
	})
}

// FailedResponseJSON writes a failed envelope around data with the given
// HTTP status.
func FailedResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  StatusFailed,
		Message: message,
		Data:    data,
	})
}

// ValidationDetail describes one failed envelope-schema rule.
type ValidationDetail struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// BindAndValidate parses the request body into T and validates it with
// go-playground/validator. On failure it writes the 400 response itself and
// returns a nil input, so handlers can simply bail out. The bind error is
// consumed here, never returned: a non-nil error from the handler would send
// the request to the Fiber ErrorHandler, which overwrites the buffered 400
// with a 500.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, FailedResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	if err := validator.New().Struct(input); err != nil {
		var details []ValidationDetail
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				details = append(details, ValidationDetail{
					Field: fe.Namespace(),
					Rule:  fe.Tag(),
				})
			}
		}
		return nil, FailedResponseJSON(c, fiber.StatusBadRequest, "Validation failed", details)
	}
	return &input, nil
}

package instructions_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/payflowhq/payflow/pkg/catalog"
	"github.com/payflowhq/payflow/pkg/currency"
	transfersvc "github.com/payflowhq/payflow/pkg/service/transfer"
	"github.com/payflowhq/payflow/webapi/common"
	"github.com/payflowhq/payflow/webapi/instructions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc := transfersvc.New(
		currency.NewRegistry(),
		catalog.MustLoad(),
		slog.New(slog.DiscardHandler),
	)
	f := fiber.New()
	instructions.Routes(f, svc, slog.New(slog.DiscardHandler))
	return f
}

func postInstruction(t *testing.T, f *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/payment-instructions", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := f.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) (common.Response, map[string]any) {
	t.Helper()
	defer resp.Body.Close() //nolint: errcheck

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope common.Response
	require.NoError(t, json.Unmarshal(raw, &envelope))
	data, _ := envelope.Data.(map[string]any)
	return envelope, data
}

func TestProcessSuccessful(t *testing.T) {
	f := setupTestApp(t)

	resp := postInstruction(t, f, `{
		"accounts": [
			{"id": "A1", "balance": 500, "currency": "USD"},
			{"id": "B1", "balance": 0, "currency": "USD"}
		],
		"instruction": "DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1"
	}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope, data := decodeEnvelope(t, resp)
	assert.Equal(t, common.StatusSuccessful, envelope.Status)
	assert.Equal(t, "successful", data["status"])
	assert.Equal(t, "AP00", data["status_code"])
	assert.Equal(t, "DEBIT", data["type"])
	assert.Equal(t, 100.0, data["amount"])
	assert.Equal(t, "A1", data["debit_account"])
	assert.Equal(t, "B1", data["credit_account"])
	assert.Nil(t, data["execute_by"])

	accounts, ok := data["accounts"].([]any)
	require.True(t, ok)
	require.Len(t, accounts, 2)
	first, ok := accounts[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 400.0, first["balance"])
	assert.Equal(t, 500.0, first["balance_before"])
}

func TestProcessPending(t *testing.T) {
	f := setupTestApp(t)

	// Far-future date keeps the assertion stable against the real clock.
	resp := postInstruction(t, f, `{
		"accounts": [
			{"id": "A1", "balance": 500, "currency": "USD"},
			{"id": "B1", "balance": 0, "currency": "USD"}
		],
		"instruction": "DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1 ON 9999-12-31"
	}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, data := decodeEnvelope(t, resp)
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "AP02", data["status_code"])
	assert.Equal(t, "9999-12-31", data["execute_by"])

	accounts, ok := data["accounts"].([]any)
	require.True(t, ok)
	first, ok := accounts[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 500.0, first["balance"])
}

func TestProcessRejected(t *testing.T) {
	tests := []struct {
		name        string
		instruction string
		wantCode    string
	}{
		{
			"syntax error",
			"PAY 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1",
			"SY03",
		},
		{
			"fractional amount",
			"DEBIT 99.5 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1",
			"AM01",
		},
		{
			"unsupported currency",
			"DEBIT 100 EUR FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1",
			"CU02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupTestApp(t)

			body := `{
				"accounts": [
					{"id": "A1", "balance": 500, "currency": "USD"},
					{"id": "B1", "balance": 0, "currency": "USD"}
				],
				"instruction": "` + tt.instruction + `"
			}`
			resp := postInstruction(t, f, body)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			envelope, data := decodeEnvelope(t, resp)
			assert.Equal(t, common.StatusFailed, envelope.Status)
			assert.Equal(t, "Transaction failed", envelope.Message)
			assert.Equal(t, "failed", data["status"])
			assert.Equal(t, tt.wantCode, data["status_code"])
			assert.Nil(t, data["type"])
			assert.Nil(t, data["amount"])
			assert.Nil(t, data["debit_account"])

			accounts, ok := data["accounts"].([]any)
			require.True(t, ok)
			assert.Empty(t, accounts)
		})
	}
}

func TestProcessEnvelopeValidation(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			"missing instruction",
			`{"accounts": [{"id": "A1", "balance": 1, "currency": "USD"}]}`,
			"Validation failed",
		},
		{
			"missing accounts",
			`{"instruction": "DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1"}`,
			"Validation failed",
		},
		{
			"account missing balance",
			`{
				"accounts": [{"id": "A1", "currency": "USD"}, {"id": "B1", "balance": 0, "currency": "USD"}],
				"instruction": "DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1"
			}`,
			"Validation failed",
		},
		{
			"not json",
			`DEBIT 100 USD`,
			"Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupTestApp(t)

			resp := postInstruction(t, f, tt.body)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			// The envelope validator owns this response; a leaked bind error
			// would hand it to the Fiber ErrorHandler and surface a 500.
			envelope, _ := decodeEnvelope(t, resp)
			assert.Equal(t, common.StatusFailed, envelope.Status)
			assert.Equal(t, tt.wantMessage, envelope.Message)
		})
	}
}

func TestProcessZeroBalanceAccountAccepted(t *testing.T) {
	f := setupTestApp(t)

	// A zero balance is a present field, not a missing one.
	resp := postInstruction(t, f, `{
		"accounts": [
			{"id": "A1", "balance": 100, "currency": "GHS"},
			{"id": "B1", "balance": 0, "currency": "GHS"}
		],
		"instruction": "DEBIT 100 GHS FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1"
	}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, data := decodeEnvelope(t, resp)
	assert.Equal(t, "AP00", data["status_code"])
}

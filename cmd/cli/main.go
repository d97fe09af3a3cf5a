// Command cli processes a single payment instruction from the command line
// against accounts supplied as JSON, printing the transfer result.
//
// Usage:
//
//	cli -accounts '[{"id":"A1","balance":500,"currency":"USD"},{"id":"B1","balance":0,"currency":"USD"}]' \
//	    DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/payflowhq/payflow/pkg/catalog"
	"github.com/payflowhq/payflow/pkg/currency"
	"github.com/payflowhq/payflow/pkg/domain/account"
	"github.com/payflowhq/payflow/pkg/domain/transfer"
	transfersvc "github.com/payflowhq/payflow/pkg/service/transfer"
)

func main() {
	accountsJSON := flag.String("accounts", "",
		"accounts as a JSON array, or @path to read the array from a file")
	flag.Parse()

	instruction := strings.Join(flag.Args(), " ")
	if *accountsJSON == "" || instruction == "" {
		fmt.Fprintln(os.Stderr, "usage: cli -accounts <json|@file> <instruction...>")
		os.Exit(2)
	}

	accounts, err := loadAccounts(*accountsJSON)
	if err != nil {
		color.Red("invalid accounts: %v", err)
		os.Exit(2)
	}

	svc := transfersvc.New(
		currency.NewRegistry(),
		catalog.MustLoad(),
		slog.New(slog.DiscardHandler),
	)

	result, err := svc.Process(transfersvc.Request{
		Accounts:    accounts,
		Instruction: instruction,
	})
	if err != nil {
		var invalid *transfer.InvalidDataError
		if errors.As(err, &invalid) {
			color.Red("failed [%s] %s", invalid.Payload.StatusCode, invalid.Payload.StatusReason)
			printJSON(invalid.Payload)
			os.Exit(1)
		}
		color.Red("error: %v", err)
		os.Exit(1)
	}

	switch result.Status {
	case transfer.StatusPending:
		color.Yellow("pending [%s] %s", result.StatusCode, result.StatusReason)
	default:
		color.Green("successful [%s] %s", result.StatusCode, result.StatusReason)
	}
	printJSON(result)
}

func loadAccounts(arg string) ([]*account.Account, error) {
	raw := []byte(arg)
	if strings.HasPrefix(arg, "@") {
		data, err := os.ReadFile(strings.TrimPrefix(arg, "@"))
		if err != nil {
			return nil, err
		}
		raw = data
	}

	var accounts []*account.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		color.Red("encoding result: %v", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

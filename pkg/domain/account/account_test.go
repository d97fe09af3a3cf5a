package account_test

import (
	"testing"

	"github.com/payflowhq/payflow/pkg/domain/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	a := &account.Account{ID: "A1", Balance: 500, Currency: "USD"}
	b := &account.Account{ID: "B1", Balance: 0, Currency: "USD"}
	accounts := []*account.Account{a, b}

	got, found := account.Find(accounts, "B1")
	require.True(t, found)
	assert.Same(t, b, got)

	_, found = account.Find(accounts, "C1")
	assert.False(t, found)

	// Identifier matching is case-sensitive.
	_, found = account.Find(accounts, "a1")
	assert.False(t, found)

	_, found = account.Find(nil, "A1")
	assert.False(t, found)
}

func TestValidID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"alphanumeric", "A123", true},
		{"with dash and dot", "acct-001.sub", true},
		{"with at sign", "user@bank", true},
		{"empty", "", false},
		{"space", "A 1", false},
		{"underscore", "A_1", false},
		{"hash", "A#1", false},
		{"non-ascii", "Aé1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, account.ValidID(tt.id))
		})
	}
}

// Package account holds the caller-supplied account snapshot used by the
// transfer pipeline. Accounts are never persisted here: the caller hands in
// at most two per invocation and owns whatever happens to the mutated copies
// afterwards.
package account

// Account is one party to a transfer. Balance holds whole currency units as
// supplied in the request envelope.
type Account struct {
	ID       string  `json:"id"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// Find resolves an account identifier against the supplied accounts.
// Matching is case-sensitive. The boolean result makes "not found" an
// explicit outcome; callers must check it before touching the account.
func Find(accounts []*Account, id string) (*Account, bool) {
	for _, a := range accounts {
		if a != nil && a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// ValidID reports whether id consists only of ASCII letters, digits, '-',
// '.' and '@'. An empty identifier is invalid.
func ValidID(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '.' || c == '@':
		default:
			return false
		}
	}
	return true
}

package instruction

// template is the keyword-slot skeleton for one instruction kind:
//
//	DEBIT  <amount> <currency> FROM ACCOUNT <id> FOR CREDIT TO ACCOUNT <id> [ON <date...>]
//	CREDIT <amount> <currency> TO ACCOUNT <id> FOR DEBIT FROM ACCOUNT <id> [ON <date...>]
//
// slots maps a token position to the keyword required there; the account
// following the instruction's own preposition is the account acted upon, the
// account after FOR ... ACCOUNT is the counter-party, so the source and
// destination positions differ by kind.
type template struct {
	slots    map[int]string
	keywords []string
	source   int
	dest     int
}

// Fixed token positions shared by both templates.
const (
	posAmount   = 1
	posCurrency = 2
	minTokens   = 11
	posOn       = 11
)

// templates is the grammar description. Built once at startup and never
// mutated afterwards.
var templates = map[Kind]template{
	KindDebit: {
		slots: map[int]string{
			3: "FROM",
			4: "ACCOUNT",
			6: "FOR",
			7: "CREDIT",
			8: "TO",
			9: "ACCOUNT",
		},
		keywords: []string{"FROM", "ACCOUNT", "FOR", "CREDIT", "TO"},
		source:   5,
		dest:     10,
	},
	KindCredit: {
		slots: map[int]string{
			3: "TO",
			4: "ACCOUNT",
			6: "FOR",
			7: "DEBIT",
			8: "FROM",
			9: "ACCOUNT",
		},
		keywords: []string{"TO", "ACCOUNT", "FOR", "DEBIT", "FROM"},
		source:   10,
		dest:     5,
	},
}

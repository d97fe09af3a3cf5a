package instruction

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// tokenize normalizes the raw instruction (trims, collapses whitespace runs)
// and splits it into tokens.
func tokenize(raw string) []string {
	return strings.Fields(raw)
}

// Parse reads one instruction string into a Parsed intent. On failure it
// returns a *SyntaxError:
//
//	SY01 — a required keyword is absent, or the instruction is too short
//	SY02 — all keywords present but one sits at the wrong position
//	SY03 — unrecognized instruction type or malformed trailing clause
//
// Parse is pure: the same input always yields the same result.
func Parse(raw string) (Parsed, error) {
	tokens := tokenize(raw)
	if len(tokens) == 0 {
		return Parsed{}, malformed("empty instruction")
	}

	kind := Kind(strings.ToUpper(tokens[0]))
	tmpl, ok := templates[kind]
	if !ok {
		return Parsed{}, malformed("unrecognized instruction type " + strconv.Quote(tokens[0]))
	}

	// Coarse presence pre-check over the token sequence. This deliberately
	// ignores position so that missing content (SY01) and misordered content
	// (SY02) stay distinguishable. Matching whole tokens rather than raw
	// substrings keeps identifiers like FROM001 from satisfying the check.
	for _, keyword := range tmpl.keywords {
		if !slices.ContainsFunc(tokens, func(tok string) bool {
			return strings.EqualFold(tok, keyword)
		}) {
			return Parsed{}, missingKeyword(keyword)
		}
	}

	if len(tokens) < minTokens {
		return Parsed{}, incomplete()
	}

	for pos := 1; pos < minTokens; pos++ {
		keyword, isSlot := tmpl.slots[pos]
		if isSlot && !strings.EqualFold(tokens[pos], keyword) {
			return Parsed{}, keywordOrder(keyword, pos)
		}
	}

	parsed := Parsed{
		Kind:                 kind,
		Amount:               parseAmount(tokens[posAmount]),
		Currency:             strings.ToUpper(tokens[posCurrency]),
		SourceAccountID:      tokens[tmpl.source],
		DestinationAccountID: tokens[tmpl.dest],
	}

	if len(tokens) > minTokens {
		if !strings.EqualFold(tokens[posOn], "ON") {
			return Parsed{}, malformed("unexpected trailing token " + strconv.Quote(tokens[posOn]))
		}
		parsed.Date = strings.Join(tokens[posOn+1:], " ")
		parsed.HasDate = true
	}

	return parsed, nil
}

// parseAmount reads the amount token as a number. An unparsable amount
// becomes NaN here and is rejected by the validator's amount rule, keeping
// numeric judgement out of the grammar.
func parseAmount(tok string) float64 {
	amount, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return math.NaN()
	}
	return amount
}

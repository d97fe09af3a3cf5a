package instruction

import "fmt"

// Syntax error codes. Each maps to a distinct failure class: content
// missing, content present but misordered, or text that is not an
// instruction at all.
const (
	CodeMissingKeyword = "SY01"
	CodeKeywordOrder   = "SY02"
	CodeMalformed      = "SY03"
)

// SyntaxError reports why an instruction string could not be parsed.
// It is terminal: no business-rule validation runs after a syntax error.
type SyntaxError struct {
	Code   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

func missingKeyword(keyword string) *SyntaxError {
	return &SyntaxError{
		Code:   CodeMissingKeyword,
		Reason: fmt.Sprintf("missing required keyword %q", keyword),
	}
}

func incomplete() *SyntaxError {
	return &SyntaxError{
		Code:   CodeMissingKeyword,
		Reason: "instruction has too few tokens",
	}
}

func keywordOrder(keyword string, position int) *SyntaxError {
	return &SyntaxError{
		Code:   CodeKeywordOrder,
		Reason: fmt.Sprintf("expected keyword %q at position %d", keyword, position),
	}
}

func malformed(reason string) *SyntaxError {
	return &SyntaxError{Code: CodeMalformed, Reason: reason}
}

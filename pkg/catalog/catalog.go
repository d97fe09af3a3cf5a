// Package catalog supplies the human-readable reason strings for status
// codes. The strings live in an embedded TOML document so wording changes
// never touch Go source; consumers key off status codes only.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed messages.toml
var messagesTOML []byte

type document struct {
	Reasons map[string]string `toml:"reasons"`
}

// Catalog resolves status codes to reason strings.
type Catalog struct {
	reasons map[string]string
}

// Load parses the embedded message catalog. It is called once at startup;
// the returned catalog is immutable and safe for concurrent use.
func Load() (*Catalog, error) {
	var doc document
	if err := toml.Unmarshal(messagesTOML, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parsing embedded messages: %w", err)
	}
	if len(doc.Reasons) == 0 {
		return nil, fmt.Errorf("catalog: embedded messages contain no reasons")
	}
	return &Catalog{reasons: doc.Reasons}, nil
}

// MustLoad is Load for program initialization paths where a broken embedded
// catalog is unrecoverable.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Reason returns the reason string for code. Unknown codes fall back to the
// code itself so a missing catalog entry never blanks a response.
func (c *Catalog) Reason(code string) string {
	if reason, ok := c.reasons[code]; ok {
		return reason
	}
	return code
}

// Has reports whether the catalog carries a reason for code.
func (c *Catalog) Has(code string) bool {
	_, ok := c.reasons[code]
	return ok
}

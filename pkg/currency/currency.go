// Package currency maintains the registry of currencies accepted on payment
// instructions. The transfer pipeline consults it for the allow-list check;
// the registry also carries display metadata for each code.
package currency

import "sync"

// Code represents a 3-letter currency code (e.g. "USD", "NGN").
type Code = string

// Meta holds currency-specific metadata.
type Meta struct {
	Symbol   string
	Decimals int
}

// Supported transaction currencies.
const (
	NGN Code = "NGN"
	USD Code = "USD"
	GBP Code = "GBP"
	GHS Code = "GHS"
)

// Registry is a thread-safe set of supported currencies keyed by code.
type Registry struct {
	mu         sync.RWMutex
	currencies map[Code]Meta
}

// NewRegistry creates a registry pre-populated with the currencies accepted
// on payment instructions.
func NewRegistry() *Registry {
	r := &Registry{currencies: make(map[Code]Meta)}

	defaults := map[Code]Meta{
		NGN: {Symbol: "₦", Decimals: 2},
		USD: {Symbol: "$", Decimals: 2},
		GBP: {Symbol: "£", Decimals: 2},
		GHS: {Symbol: "₵", Decimals: 2},
	}
	for code, meta := range defaults {
		r.Register(code, meta)
	}
	return r
}

// Register adds or updates a currency in the registry.
func (r *Registry) Register(code Code, meta Meta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currencies[code] = meta
}

// Unregister removes a currency from the registry and reports whether it was
// present.
func (r *Registry) Unregister(code Code) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, found := r.currencies[code]
	delete(r.currencies, code)
	return found
}

// Get returns the metadata for code and whether it is registered.
func (r *Registry) Get(code Code) (Meta, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, found := r.currencies[code]
	return meta, found
}

// IsSupported checks if a currency code is registered.
func (r *Registry) IsSupported(code Code) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, found := r.currencies[code]
	return found
}

// ListSupported returns all registered currency codes.
func (r *Registry) ListSupported() []Code {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]Code, 0, len(r.currencies))
	for code := range r.currencies {
		codes = append(codes, code)
	}
	return codes
}

// Count returns the number of registered currencies.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.currencies)
}

// Package regexp implements listing.Parser by structural pattern matching
// against the known page templates of both layouts. It does not build a DOM.
package regexp

import "github.com/fwojciec/listing"

// Ensure Parser implements listing.Parser at compile time.
var _ listing.Parser = (*Parser)(nil)

// Parser parses standard and lofi listing pages. It holds no mutable state
// and is safe for concurrent use.
type Parser struct {
	categories listing.CategoryLookup
}

// NewParser creates a Parser that resolves category labels with lookup.
// A nil lookup uses listing.LookupCategory.
func NewParser(lookup listing.CategoryLookup) *Parser {
	if lookup == nil {
		lookup = listing.LookupCategory
	}
	return &Parser{categories: lookup}
}

// Parse parses body with the parser matching the layout of source.
// Unrecognised sources are treated as standard.
func (p *Parser) Parse(body string, source listing.Source) (*listing.Result, error) {
	switch source {
	case listing.SourceLofi:
		return p.ParseLofi(body)
	default:
		return p.ParseStandard(body)
	}
}

package mock

import "github.com/fwojciec/listing"

var _ listing.Parser = (*Parser)(nil)

// Parser is a mock implementation of listing.Parser.
type Parser struct {
	ParseFn func(body string, source listing.Source) (*listing.Result, error)
}

func (p *Parser) Parse(body string, source listing.Source) (*listing.Result, error) {
	return p.ParseFn(body, source)
}

var _ listing.LayoutDetector = (*LayoutDetector)(nil)

// LayoutDetector is a mock implementation of listing.LayoutDetector.
type LayoutDetector struct {
	DetectFn func(body string) (listing.Source, bool)
}

func (d *LayoutDetector) Detect(body string) (listing.Source, bool) {
	return d.DetectFn(body)
}

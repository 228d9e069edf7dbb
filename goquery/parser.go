package goquery

import "github.com/fwojciec/listing"

// DetectingParser parses pages whose source is not known up front. It
// detects the layout and hands the page to the wrapped parser.
type DetectingParser struct {
	detector listing.LayoutDetector
	next     listing.Parser
}

// NewDetectingParser creates a new DetectingParser.
func NewDetectingParser(detector listing.LayoutDetector, next listing.Parser) *DetectingParser {
	return &DetectingParser{detector: detector, next: next}
}

// Parse detects the layout of body and parses it. Undetectable pages are
// parsed as standard so that the wrapped parser reports the failure.
func (p *DetectingParser) Parse(body string) (*listing.Result, error) {
	source, _ := p.detector.Detect(body)
	return p.next.Parse(body, source)
}

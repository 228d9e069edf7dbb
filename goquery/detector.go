// Package goquery identifies listing page layouts by inspecting the DOM.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/listing"
)

// Ensure Detector implements listing.LayoutDetector at compile time.
var _ listing.LayoutDetector = (*Detector)(nil)

// Detector identifies the layout of a listing page from its gallery cells,
// falling back to the "no hits" notices each layout renders when a listing
// is empty.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the source whose layout body uses.
// Returns false if the layout cannot be determined.
func (d *Detector) Detect(body string) (listing.Source, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return listing.SourceStandard, false
	}

	// Gallery cells are the most reliable markers
	if d.hasSelector(doc, "td.ii") {
		return listing.SourceLofi, true
	}
	if d.hasSelector(doc, "td.itdc") || d.hasSelector(doc, "div.it5") {
		return listing.SourceStandard, true
	}

	// Empty listings only carry a notice; the standard one is a paragraph
	if d.hasText(doc, "p", "No hits found") {
		return listing.SourceStandard, true
	}
	if d.hasText(doc, "div", "No hits found") || d.hasText(doc, "div", "No more hits found") {
		return listing.SourceLofi, true
	}

	return listing.SourceStandard, false
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

// hasText checks if an element matching the selector has exactly the given text.
func (d *Detector) hasText(doc *goquery.Document, selector, text string) bool {
	found := false
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Text()) == text {
			found = true
			return false
		}
		return true
	})
	return found
}

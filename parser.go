package listing

// Parser extracts listing records from page text.
type Parser interface {
	// Parse parses body as a listing page of the given source.
	// Returns EPARSE if the page matches no known template, ERANGE if the
	// page lies past the end of the listing, and EASSERT if a required field
	// is malformed. An empty listing is a successful Result with NotFound.
	Parse(body string, source Source) (*Result, error)
}

// LayoutDetector identifies the layout of a listing page.
type LayoutDetector interface {
	// Detect returns the source whose layout body uses.
	// The boolean is false when the layout cannot be recognised.
	Detect(body string) (Source, bool)
}

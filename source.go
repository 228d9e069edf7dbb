package listing

import "strings"

// Source identifies the site variant a page was fetched from, which decides
// its layout.
type Source int

// Supported sources. SourceStandard and SourceStandardAlt share a layout.
const (
	SourceStandard Source = iota
	SourceStandardAlt
	SourceLofi
)

// String returns the short tag of the source.
func (s Source) String() string {
	switch s {
	case SourceStandardAlt:
		return "ex"
	case SourceLofi:
		return "lofi"
	}
	return "g"
}

// IsLofi reports whether pages from s use the lofi layout.
func (s Source) IsLofi() bool {
	return s == SourceLofi
}

// ParseSource parses a source tag. It accepts the short tags returned by
// String as well as "standard", "alt" and "standard-alt".
func ParseSource(tag string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "g", "standard":
		return SourceStandard, nil
	case "ex", "alt", "standard-alt":
		return SourceStandardAlt, nil
	case "lofi":
		return SourceLofi, nil
	}
	return SourceStandard, Errorf(EINVALID, "unknown source %q", tag)
}

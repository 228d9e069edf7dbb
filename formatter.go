package listing

import (
	"fmt"
	"strings"
)

// FormatRecords formats records for terminal display, one block per record.
// Records are separated by blank lines.
func FormatRecords(records []Record) string {
	if len(records) == 0 {
		return ""
	}

	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, FormatRecord(r))
	}

	return strings.Join(parts, "\n\n")
}

// FormatRecord formats a single record. Unknown record types are printed
// by key only.
func FormatRecord(r Record) string {
	switch g := r.(type) {
	case *Gallery:
		return fmt.Sprintf("## %s\n%s | %s | %s | %s by %s\n%s",
			g.Title, g.Path(), g.Category, g.Rating, g.Posted, g.Uploader, g.Thumbnail.URL)
	case *LofiGallery:
		s := fmt.Sprintf("## %s\n%s | %s | %s | %s by %s\n%s",
			g.Title, g.Path(), g.Category, g.Rating, g.Posted, g.Uploader, g.ThumbnailURL)
		if len(g.Tags) > 0 {
			s += "\ntags: " + strings.Join(g.Tags, ", ")
		}
		return s
	}
	return "## " + r.Key().Path()
}

package regexp

import (
	"regexp"
	"strconv"

	"github.com/fwojciec/listing"
)

var detailURLRe = regexp.MustCompile(`/(\d+)/(\w+)`)

// ParseDetailURL extracts the gallery key from the first "/<id>/<token>"
// segment of a detail link. The boolean is false when no such segment exists.
func ParseDetailURL(s string) (listing.GalleryKey, bool) {
	m := detailURLRe.FindStringSubmatch(s)
	if m == nil {
		return listing.GalleryKey{}, false
	}

	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return listing.GalleryKey{}, false
	}

	return listing.GalleryKey{ID: id, Token: m[2]}, true
}

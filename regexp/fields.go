package regexp

import (
	"strings"

	"github.com/fwojciec/listing"
)

const (
	postedUploaderSep = " by "
	tagSep            = ", "
	emptyField        = "-"
)

// trim removes incidental whitespace around a captured field.
func trim(s string) string {
	return strings.TrimSpace(s)
}

// SplitPostedUploader splits a lofi "<posted> by <uploader>" field.
// Returns EASSERT if the delimiter is missing.
func SplitPostedUploader(s string) (posted, uploader string, err error) {
	i := strings.Index(s, postedUploaderSep)
	if i == -1 {
		return "", "", listing.Errorf(listing.EASSERT, "can't parse posted and uploader from %q", s)
	}
	return trim(s[:i]), trim(s[i+len(postedUploaderSep):]), nil
}

// SplitTags splits a lofi tag field. The placeholder "-" yields no tags.
func SplitTags(s string) []string {
	if s == emptyField {
		return []string{}
	}
	tags := strings.Split(s, tagSep)
	for i := range tags {
		tags[i] = trim(tags[i])
	}
	return tags
}

// ParseLofiRating reads a lofi star rating. The placeholder "-" yields NaN.
func ParseLofiRating(s string) listing.Rating {
	if s == emptyField {
		return listing.NoRating
	}
	return listing.Rating(CountStars(s))
}

package regexp

import (
	"regexp"
	"strconv"
	"strings"
)

// The rating widget is a sprite sheet shifted by a CSS background-position.
const (
	// pixelsPerStar is the horizontal sprite offset of one whole star.
	pixelsPerStar = 16

	// halfStarOffset is the vertical sprite offset of the half-star row.
	halfStarOffset = 21
)

var pixelOffsetRe = regexp.MustCompile(`\d+px`)

// DecodeRating decodes the rating encoded in the style attribute of a
// standard rating widget. The boolean is false when the style holds fewer
// than two pixel offsets.
func DecodeRating(style string) (float64, bool) {
	offsets := pixelOffsetRe.FindAllString(style, 2)
	if len(offsets) < 2 {
		return 0, false
	}

	first, err := strconv.Atoi(strings.TrimSuffix(offsets[0], "px"))
	if err != nil {
		return 0, false
	}
	second, err := strconv.Atoi(strings.TrimSuffix(offsets[1], "px"))
	if err != nil {
		return 0, false
	}

	rate := 5 - first/pixelsPerStar
	if second == halfStarOffset {
		rate--
		return float64(rate) + 0.5, true
	}
	return float64(rate), true
}

// CountStars returns the number of star glyphs in a lofi rating.
func CountStars(s string) float64 {
	return float64(strings.Count(s, "*"))
}

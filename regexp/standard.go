package regexp

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/listing"
)

// noHitsStandard marks a standard page whose query matched nothing.
const noHitsStandard = "No hits found</p>"

// pageCountRe captures the last page number of the pagination bar, which is
// the cell right before the "next" arrow.
var pageCountRe = regexp.MustCompile(`<a[^<>]+>(\d+)</a></td><td[^<>]+>(?:<a[^<>]+>)?&`)

// galleryCellRe matches one gallery row of the standard layout.
var galleryCellRe = regexp.MustCompile(
	`<td class="itdc">(?:<a.+?>)?<img.+?alt="(.+?)".+?/>(?:</a>)?</td>` + // category
		`<td.+?>(.+?)</td>` + // posted
		`<td.+?><div.+?><div.+?height:(\d+)px; width:(\d+)px">` +
		`(?:<img.+?src="(.+?)".+?alt="(.+?)" style.+?/>` + // direct thumbnail and title
		`|init~([^<>"~]+~[^<>"~]+)~([^<>]+))` + // compressed thumbnail and title
		`</div>` +
		`.+?` +
		`<div class="it5"><a href="([^<>"]+)"[^<>]+>(.+?)</a></div>` + // detail link and title
		`.+?` +
		`<div class="ir it4r" style="([^<>"]+)">` + // rating
		`.+?` +
		`<td class="itu"><div><a.+?>(.+?)</a>`) // uploader

// Submatch indexes of galleryCellRe.
const (
	cellCategory = iota + 1
	cellPosted
	cellThumbHeight
	cellThumbWidth
	cellThumbSrc
	cellThumbAlt
	cellThumbInit
	cellThumbInitTitle
	cellDetailURL
	cellDetailTitle
	cellRatingStyle
	cellUploader
)

// ParseStandard parses a page of the standard layout.
func (p *Parser) ParseStandard(body string) (*listing.Result, error) {
	result := &listing.Result{Records: []listing.Record{}}

	if m := pageCountRe.FindStringSubmatch(body); m != nil {
		pages, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, listing.ParseFailure(body, "invalid page count %q", m[1])
		}
		result.Pages = listing.PageCount(pages)
	} else if strings.Contains(body, noHitsStandard) {
		result.Pages = listing.NotFound
		return result, nil
	} else {
		return nil, listing.ParseFailure(body, "can't parse gallery list page count")
	}

	if result.Pages <= 0 {
		return result, nil
	}

	for _, m := range galleryCellRe.FindAllStringSubmatch(body, -1) {
		if g, ok := p.gallery(m); ok {
			result.Records = append(result.Records, g)
		}
	}

	if len(result.Records) == 0 {
		return nil, listing.ParseFailure(body, "can't parse gallery list: %d pages but no galleries", result.Pages)
	}

	return result, nil
}

// gallery builds a record from one cell match. Cells whose detail link
// carries no key are skipped.
func (p *Parser) gallery(m []string) (*listing.Gallery, bool) {
	key, ok := ParseDetailURL(m[cellDetailURL])
	if !ok {
		return nil, false
	}

	thumb := resolveThumb(m)
	// The captures are digits only; an overflowing size is recorded as 0.
	height, _ := strconv.Atoi(m[cellThumbHeight])
	width, _ := strconv.Atoi(m[cellThumbWidth])

	rating := listing.NoRating
	if r, ok := DecodeRating(m[cellRatingStyle]); ok {
		rating = listing.Rating(r)
	}

	return &listing.Gallery{
		GalleryKey: key,
		Category:   p.categories(trim(m[cellCategory])),
		Posted:     trim(m[cellPosted]),
		Thumbnail: listing.Thumbnail{
			URL:    trim(thumb.url()),
			Width:  width,
			Height: height,
		},
		Title:    trim(thumb.title()),
		Rating:   rating,
		Uploader: trim(m[cellUploader]),
	}, true
}

// thumbSource is one of the two encodings of a standard thumbnail.
type thumbSource interface {
	url() string
	title() string
}

// directThumb is a thumbnail rendered as an <img> tag.
type directThumb struct {
	src string
	alt string
}

func (t directThumb) url() string   { return t.src }
func (t directThumb) title() string { return t.alt }

// compressedThumb is a lazily loaded thumbnail rendered as
// "init~host~path~title" text, where "~" stands for "/".
type compressedThumb struct {
	path string
	text string
}

func (t compressedThumb) url() string   { return "http://" + strings.ReplaceAll(t.path, "~", "/") }
func (t compressedThumb) title() string { return t.text }

// resolveThumb picks the encoding the cell used. The direct alternative
// always captures a non-empty src when it matched.
func resolveThumb(m []string) thumbSource {
	if m[cellThumbSrc] != "" {
		return directThumb{src: m[cellThumbSrc], alt: m[cellThumbAlt]}
	}
	return compressedThumb{path: m[cellThumbInit], text: m[cellThumbInitTitle]}
}

package regexp

import (
	"regexp"
	"strings"

	"github.com/fwojciec/listing"
)

// Markers of the lofi layout.
const (
	noHitsLofi     = "No hits found</div>"
	noMoreHitsLofi = "No more hits found</div>"
	nextPageLofi   = "Next Page &gt;</a>"
)

// lofiCellRe matches one gallery block of the lofi layout.
var lofiCellRe = regexp.MustCompile(
	`<td class="ii"><a href="(.+?)">` + // detail link
		`<img src="(.+?)".+?/>` + // thumbnail
		`.+?<a class="b" href=".+?">(.+?)</a>` + // title
		`.+?<td class="ik ip">Posted:</td><td class="ip">(.+?)</td>` + // posted by uploader
		`</tr><tr><td class="ik">Category:</td><td>(.+?)</td>` +
		`</tr><tr><td class="ik">Tags:</td><td>(.+?)</td>` +
		`</tr><tr><td class="ik">Rating:</td><td class="ir">(.+?)</td>`)

// Submatch indexes of lofiCellRe.
const (
	lofiDetailURL = iota + 1
	lofiThumb
	lofiTitle
	lofiPostedBy
	lofiCategory
	lofiTags
	lofiRating
)

// ParseLofi parses a page of the lofi layout. The lofi layout does not show
// a page count, so Pages is one of the listing sentinels.
func (p *Parser) ParseLofi(body string) (*listing.Result, error) {
	result := &listing.Result{Records: []listing.Record{}}

	for _, m := range lofiCellRe.FindAllStringSubmatch(body, -1) {
		g, err := p.lofiGallery(m)
		if err != nil {
			return nil, err
		}
		result.Records = append(result.Records, g)
	}

	switch {
	case len(result.Records) > 0 && strings.Contains(body, nextPageLofi):
		result.Pages = listing.KeepLoading
	case len(result.Records) > 0:
		result.Pages = listing.CurrentPageIsLast
	case strings.Contains(body, noHitsLofi):
		result.Pages = listing.NotFound
	case strings.Contains(body, noMoreHitsLofi):
		return nil, listing.Errorf(listing.ERANGE, "index is out of range")
	default:
		return nil, listing.ParseFailure(body, "can't parse lofi gallery list")
	}

	return result, nil
}

func (p *Parser) lofiGallery(m []string) (*listing.LofiGallery, error) {
	key, ok := ParseDetailURL(m[lofiDetailURL])
	if !ok {
		return nil, listing.Errorf(listing.EASSERT, "can't parse gallery detail url %q", m[lofiDetailURL])
	}

	posted, uploader, err := SplitPostedUploader(trim(m[lofiPostedBy]))
	if err != nil {
		return nil, err
	}

	return &listing.LofiGallery{
		GalleryKey:   key,
		Category:     p.categories(trim(m[lofiCategory])),
		Title:        trim(m[lofiTitle]),
		ThumbnailURL: trim(m[lofiThumb]),
		Posted:       posted,
		Uploader:     uploader,
		Tags:         SplitTags(trim(m[lofiTags])),
		Rating:       ParseLofiRating(trim(m[lofiRating])),
	}, nil
}

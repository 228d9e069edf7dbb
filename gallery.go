package listing

import (
	"encoding/json"
	"math"
	"strconv"
)

// GalleryKey identifies a gallery. Both fields are needed to address its
// detail page.
type GalleryKey struct {
	ID    int64  `json:"id"`
	Token string `json:"token"`
}

// Key returns the key itself so that embedding types satisfy Record.
func (k GalleryKey) Key() GalleryKey {
	return k
}

// Path returns the key in the "id/token" form used by detail URLs.
func (k GalleryKey) Path() string {
	return strconv.FormatInt(k.ID, 10) + "/" + k.Token
}

// Rating is a star rating between 0 and 5. NaN means the rating could not be
// decided from the page.
type Rating float64

// NoRating is the rating of a gallery whose widget could not be decoded.
var NoRating = Rating(math.NaN())

// Known reports whether the rating was decided.
func (r Rating) Known() bool {
	return !math.IsNaN(float64(r))
}

// MarshalJSON encodes unknown ratings as null.
func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.Known() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(r))
}

// UnmarshalJSON decodes null as an unknown rating.
func (r *Rating) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = NoRating
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = Rating(f)
	return nil
}

// String formats the rating with one decimal, or "-" when unknown.
func (r Rating) String() string {
	if !r.Known() {
		return "-"
	}
	return strconv.FormatFloat(float64(r), 'f', 1, 64)
}

// Thumbnail is a gallery cover image and the box it is rendered in.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Record is a single gallery entry of a listing page.
type Record interface {
	Key() GalleryKey
}

// Gallery is a listing entry parsed from the standard layout.
type Gallery struct {
	GalleryKey
	Category  Category  `json:"category"`
	Posted    string    `json:"posted"`
	Thumbnail Thumbnail `json:"thumbnail"`
	Title     string    `json:"title"`
	Rating    Rating    `json:"rating"`
	Uploader  string    `json:"uploader"`
}

// LofiGallery is a listing entry parsed from the lofi layout.
type LofiGallery struct {
	GalleryKey
	Category     Category `json:"category"`
	Title        string   `json:"title"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Posted       string   `json:"posted"`
	Uploader     string   `json:"uploader"`
	Tags         []string `json:"tags"`
	Rating       Rating   `json:"rating"`
}

// PageCount is the number of pages of a listing, or one of the sentinels below.
type PageCount int

// PageCount sentinels.
const (
	// NotFound means the query matched nothing.
	NotFound PageCount = 0

	// CurrentPageIsLast means the lofi page has no successor.
	CurrentPageIsLast PageCount = -1

	// KeepLoading means more lofi pages exist but their number is unknown.
	KeepLoading PageCount = math.MaxInt32
)

// Known reports whether p is an actual page count rather than a lofi sentinel.
func (p PageCount) Known() bool {
	return p > 0 && p != KeepLoading
}

// String returns a readable form of the count.
func (p PageCount) String() string {
	switch p {
	case NotFound:
		return "not found"
	case CurrentPageIsLast:
		return "last page"
	case KeepLoading:
		return "more pages"
	}
	return strconv.Itoa(int(p))
}

// Result is the outcome of parsing one listing page.
type Result struct {
	Pages   PageCount `json:"pages"`
	Records []Record  `json:"records"`
}

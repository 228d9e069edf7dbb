package listing

import "strings"

// Category is the content category of a gallery.
type Category int

// Gallery categories.
const (
	CategoryUnknown Category = iota
	CategoryDoujinshi
	CategoryManga
	CategoryArtistCG
	CategoryGameCG
	CategoryWestern
	CategoryNonH
	CategoryImageSet
	CategoryCosplay
	CategoryAsianPorn
	CategoryMisc
)

var categoryNames = map[Category]string{
	CategoryUnknown:   "Unknown",
	CategoryDoujinshi: "Doujinshi",
	CategoryManga:     "Manga",
	CategoryArtistCG:  "Artist CG",
	CategoryGameCG:    "Game CG",
	CategoryWestern:   "Western",
	CategoryNonH:      "Non-H",
	CategoryImageSet:  "Image Set",
	CategoryCosplay:   "Cosplay",
	CategoryAsianPorn: "Asian Porn",
	CategoryMisc:      "Misc",
}

// String returns the display name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryUnknown]
}

// MarshalText encodes the category by its display name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a display name or page label.
func (c *Category) UnmarshalText(text []byte) error {
	*c = LookupCategory(string(text))
	return nil
}

// CategoryLookup resolves the category label printed on a listing page.
// Labels it does not know must map to CategoryUnknown.
type CategoryLookup func(label string) Category

// categoryLabels maps lower-cased page labels, old and new spellings alike.
var categoryLabels = map[string]Category{
	"doujinshi":      CategoryDoujinshi,
	"manga":          CategoryManga,
	"artist cg":      CategoryArtistCG,
	"artist cg sets": CategoryArtistCG,
	"artistcg":       CategoryArtistCG,
	"game cg":        CategoryGameCG,
	"game cg sets":   CategoryGameCG,
	"gamecg":         CategoryGameCG,
	"western":        CategoryWestern,
	"non-h":          CategoryNonH,
	"non h":          CategoryNonH,
	"image set":      CategoryImageSet,
	"image sets":     CategoryImageSet,
	"imageset":       CategoryImageSet,
	"cosplay":        CategoryCosplay,
	"asian porn":     CategoryAsianPorn,
	"asianporn":      CategoryAsianPorn,
	"misc":           CategoryMisc,
}

// LookupCategory is the default CategoryLookup. Matching ignores case and
// surrounding whitespace.
func LookupCategory(label string) Category {
	if c, ok := categoryLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return c
	}
	return CategoryUnknown
}

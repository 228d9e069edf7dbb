// Package bloom provides gallery key deduplication using Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/listing"
)

// Filter wraps a Bloom filter for gallery key deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected keys
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a key to the filter.
func (f *Filter) Add(key listing.GalleryKey) {
	f.f.AddString(key.Path())
}

// Test returns true if the key might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(key listing.GalleryKey) bool {
	return f.f.TestString(key.Path())
}

// TestAndAdd reports whether the key might already be in the filter and
// adds it in the same step.
func (f *Filter) TestAndAdd(key listing.GalleryKey) bool {
	return f.f.TestAndAddString(key.Path())
}

// EstimatedCount returns the approximate number of keys in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// Package fs stores fetched listing pages on disk.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/listing"
)

// Ensure FileStore implements listing.PageStore at compile time.
var _ listing.PageStore = (*FileStore)(nil)

// FileStore implements listing.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

// NewFileStoreAt creates a FileStore whose final directory is dir.
func NewFileStoreAt(dir string) *FileStore {
	dir = filepath.Clean(dir)
	return NewFileStore(filepath.Dir(dir), filepath.Base(dir))
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// PageFile returns the file name a page is saved under. Names sort in
// page order.
func PageFile(page int) string {
	return fmt.Sprintf("page-%04d.html", page)
}

func (s *FileStore) Save(ctx context.Context, page int, body string) error {
	if page < 0 {
		return listing.Errorf(listing.EINVALID, "negative page index %d", page)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(s.tempDir(), PageFile(page)), []byte(body), 0644)
}

func (s *FileStore) Commit() error {
	// Nothing saved yet still publishes an empty directory
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

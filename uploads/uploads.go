package uploads

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store persists uploaded binary content under a root directory, one
// subdirectory per category (receipts, dp). The reference it returns
// is what the owning User or Transaction record keeps; deleting that
// record never deletes the file.
type Store struct {
	Root string
}

// Save writes data under <root>/<category> and returns the stored
// reference, relative to the root so records survive a root move.
// The derived name combines the owner key, a nanosecond timestamp and
// the original base name, so an existing file is never overwritten.
// Category directories are created lazily; creating one that already
// exists is not an error.
func (s *Store) Save(category, ownerKey string, data []byte, originalName string) (string, error) {
	dir := filepath.Join(s.Root, category)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%d_%s", ownerKey, time.Now().UnixNano(), filepath.Base(originalName))
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", err
	}
	return filepath.Join(category, name), nil
}

// Path resolves a stored reference back to its location on disk.
func (s *Store) Path(ref string) string {
	return filepath.Join(s.Root, ref)
}

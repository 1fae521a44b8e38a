// Package storage implements the artifact store: a filesystem area split
// into an incoming zone for staged uploads and a generated zone for
// transformation output.
//
// Every file gets a UUID-prefixed name, so concurrent requests never
// collide and no locking is needed. Removal is idempotent; cleanup of a
// path that is already gone is not an error.
package storage

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"go-docstudio/internal/utils"
)

type Store struct {
	IncomingDir  string
	GeneratedDir string
}

// New creates a store rooted at the given directory, creating the
// incoming and generated zones if needed.
func New(root string) (*Store, error) {
	s := &Store{
		IncomingDir:  filepath.Join(root, "incoming"),
		GeneratedDir: filepath.Join(root, "generated"),
	}
	for _, dir := range []string{s.IncomingDir, s.GeneratedDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
		}
	}
	return s, nil
}

// Stage writes an uploaded file to the incoming zone under a unique name
// derived from the original filename. The caller owns the returned path
// and must remove it when the request finishes.
func (s *Store) Stage(originalName string, src io.Reader) (string, error) {
	name := fmt.Sprintf("%s-%s", utils.GenerateUUID(), utils.SanitizeFilename(originalName))
	return s.write(filepath.Join(s.IncomingDir, name), src)
}

// Allocate returns a unique path in the generated zone for codecs that
// write their output file themselves. Nothing is created on disk.
func (s *Store) Allocate(kind, ext string) string {
	return filepath.Join(s.GeneratedDir, fmt.Sprintf("%s-%s%s", kind, utils.GenerateUUID(), ext))
}

// Persist writes generated output bytes to the generated zone and returns
// the path of the new artifact.
func (s *Store) Persist(kind string, src io.Reader, ext string) (string, error) {
	return s.write(s.Allocate(kind, ext), src)
}

func (s *Store) write(path string, src io.Reader) (string, error) {
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// Remove deletes a file. Removing a path that no longer exists is a
// no-op; any other failure is logged and swallowed, cleanup is best
// effort.
func (s *Store) Remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("storage: failed to remove %s: %v", path, err)
	}
}

// Sweep removes every regular file in both zones. Called at startup and
// shutdown so leftover artifacts from a previous run do not accumulate.
func (s *Store) Sweep() {
	for _, dir := range []string{s.IncomingDir, s.GeneratedDir} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				_ = os.Remove(filepath.Join(dir, entry.Name()))
			}
		}
	}
}

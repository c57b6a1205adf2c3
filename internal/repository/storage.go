/*
Copyright 2026 The maven-publish authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package repository

import (
	"fmt"
	"io"
	"os"

	"github.com/fluxcd/pkg/lockedfile"
	"github.com/opencontainers/go-digest"
)

// Storage manages release files in a local Maven repository tree.
// It provides methods for copying artifacts, writing descriptors and
// checksums, and listing published versions.
type Storage struct {
	// BasePath is the root directory of the repository tree.
	BasePath string
}

// NewStorage creates the repository root directory if it does not exist
// and returns a new Storage.
func NewStorage(basePath string) (*Storage, error) {
	if basePath == "" {
		return nil, fmt.Errorf("storage base path cannot be empty")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage base path '%s': %w", basePath, err)
	}
	return &Storage{BasePath: basePath}, nil
}

// Verify compares the given digest against the contents of the file at
// the given repository path. It returns an error if the digests don't
// match, or if it can't be verified.
func (s *Storage) Verify(rel string, d digest.Digest) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("failed to validate digest '%s': %w", d, err)
	}

	localPath, err := s.LocalPath(rel)
	if err != nil {
		return err
	}
	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	verifier := d.Verifier()
	if _, err = io.Copy(verifier, f); err != nil {
		return err
	}
	if !verifier.Verified() {
		return fmt.Errorf("computed digest doesn't match '%s'", d.String())
	}
	return nil
}

// Lock creates a file lock for the given repository path.
func (s *Storage) Lock(rel string) (unlock func(), err error) {
	localPath, err := s.LocalPath(rel)
	if err != nil {
		return nil, err
	}
	mutex := lockedfile.MutexAt(localPath + ".lock")
	return mutex.Lock()
}

// VersionDirs returns the names of the version subdirectories in the
// given artifact directory. Entries are returned in directory order,
// the list is deliberately not sorted.
func (s *Storage) VersionDirs(rel string) ([]string, error) {
	localPath, err := s.LocalPath(rel)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact directory: %w", err)
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifact directory '%s': %w", rel, err)
	}

	var versions []string
	for _, entry := range entries {
		if entry.IsDir() {
			versions = append(versions, entry.Name())
		}
	}
	return versions, nil
}

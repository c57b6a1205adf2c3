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
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"

	intdigest "github.com/mongodb-labs/maven-publish/internal/digest"
)

// Copy atomically writes the io.Reader contents to the given repository
// path with the given mode. If successful, it returns the digest of the
// written bytes. Parent directories are created as needed.
func (s *Storage) Copy(rel string, reader io.Reader, mode os.FileMode) (_ digest.Digest, err error) {
	localPath, err := s.LocalPath(rel)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return "", err
	}

	tf, err := os.CreateTemp(filepath.Split(localPath))
	if err != nil {
		return "", err
	}
	tfName := tf.Name()
	defer func() {
		if err != nil {
			os.Remove(tfName)
		}
	}()

	d := intdigest.Canonical.Digester()
	mw := io.MultiWriter(tf, d.Hash())

	if _, err := io.Copy(mw, reader); err != nil {
		tf.Close()
		return "", err
	}
	if err := tf.Close(); err != nil {
		return "", err
	}

	if err := os.Chmod(tfName, mode); err != nil {
		return "", err
	}

	if err := os.Rename(tfName, localPath); err != nil {
		return "", err
	}

	return d.Digest(), nil
}

// CopyFromPath atomically copies the contents of the file at src to the
// given repository path, carrying over the source file mode and
// modification time. If successful, it returns the digest of the
// written bytes.
func (s *Storage) CopyFromPath(src, rel string) (_ digest.Digest, err error) {
	f, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		return "", err
	}

	d, err := s.Copy(rel, f, fi.Mode().Perm())
	if err != nil {
		return "", err
	}

	localPath, err := s.LocalPath(rel)
	if err != nil {
		return "", err
	}
	if err := os.Chtimes(localPath, fi.ModTime(), fi.ModTime()); err != nil {
		return "", err
	}

	return d, nil
}

// WriteFile atomically writes data to the given repository path.
func (s *Storage) WriteFile(rel string, data []byte, mode os.FileMode) error {
	_, err := s.Copy(rel, bytes.NewReader(data), mode)
	return err
}

// WriteChecksum writes the hex encoded digest as a checksum file at the
// given repository path.
func (s *Storage) WriteChecksum(rel string, d digest.Digest) error {
	return s.WriteFile(rel, []byte(d.Encoded()), 0o644)
}

// MkdirAll creates the given repository directory, recursively and
// idempotently.
func (s *Storage) MkdirAll(rel string) error {
	localPath, err := s.LocalPath(rel)
	if err != nil {
		return err
	}
	return os.MkdirAll(localPath, 0o755)
}

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

// Package metadata maintains the maven-metadata.xml index documents of
// a Maven repository tree.
package metadata

import (
	"encoding/xml"
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/mongodb-labs/maven-publish/internal/repository"
)

// FileName is the name of the metadata document in an artifact
// directory.
const FileName = "maven-metadata.xml"

// Metadata is the maven-metadata.xml document describing the published
// versions of an artifact.
type Metadata struct {
	XMLName    xml.Name   `xml:"metadata"`
	GroupID    string     `xml:"groupId"`
	ArtifactID string     `xml:"artifactId"`
	Versioning Versioning `xml:"versioning"`
}

// Versioning holds the version index of an artifact.
type Versioning struct {
	Versions    Versions `xml:"versions"`
	LastUpdated string   `xml:"lastUpdated"`
}

// Versions is the list of published versions.
type Versions struct {
	Version []string `xml:"version"`
}

// Generator regenerates maven-metadata.xml documents from the
// repository tree.
type Generator struct {
	Storage *repository.Storage

	// Now returns the current time. It may be overridden in tests.
	Now func() time.Time
}

// NewGenerator returns a Generator backed by the given storage.
func NewGenerator(s *repository.Storage) *Generator {
	return &Generator{Storage: s, Now: time.Now}
}

// Generate rebuilds the metadata document of the artifact identified by
// the given coordinates from the version directories present in the
// tree. The document is rewritten in full, contents of a previous
// document do not carry over. The version list reflects directory
// order, and lastUpdated is the current time in epoch milliseconds.
func (g *Generator) Generate(c repository.Coordinates) error {
	artifactDir := c.ArtifactDir()
	docPath := path.Join(artifactDir, FileName)

	unlock, err := g.Storage.Lock(docPath)
	if err != nil {
		return fmt.Errorf("failed to lock metadata for '%s': %w", artifactDir, err)
	}
	defer unlock()

	versions, err := g.Storage.VersionDirs(artifactDir)
	if err != nil {
		return err
	}

	m := Metadata{
		GroupID:    c.GroupID(),
		ArtifactID: c.ArtifactID,
		Versioning: Versioning{
			Versions:    Versions{Version: versions},
			LastUpdated: strconv.FormatInt(g.Now().UnixMilli(), 10),
		},
	}

	data, err := xml.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata for '%s': %w", artifactDir, err)
	}
	data = append([]byte(xml.Header), data...)

	if err := g.Storage.WriteFile(docPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata for '%s': %w", artifactDir, err)
	}
	return nil
}

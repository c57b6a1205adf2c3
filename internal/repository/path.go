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
	"path"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// Coordinates identifies one version of an artifact in a Maven
// repository tree.
type Coordinates struct {
	// GroupPath is the slash-separated form of the Maven groupId,
	// e.g. 'org/mongodb'.
	GroupPath string

	// ArtifactID is the Maven artifactId, e.g. 'mongo-java-driver'.
	ArtifactID string

	// Version is the released version string.
	Version string
}

// Stem returns the file-name stem shared by all repository files of the
// coordinates, in the form of '<artifactId>-<version>'.
func (c Coordinates) Stem() string {
	return c.ArtifactID + "-" + c.Version
}

// ArtifactDir returns the repository path holding all versions of the
// artifact, in the form of '<groupPath>/<artifactId>'.
func (c Coordinates) ArtifactDir() string {
	return path.Join(c.GroupPath, c.ArtifactID)
}

// VersionDir returns the repository path of the version directory, in
// the form of '<groupPath>/<artifactId>/<version>'.
func (c Coordinates) VersionDir() string {
	return path.Join(c.GroupPath, c.ArtifactID, c.Version)
}

// GroupID returns the dotted form of the group path, e.g. 'org.mongodb'
// for 'org/mongodb'.
func (c Coordinates) GroupID() string {
	return strings.ReplaceAll(strings.Trim(c.GroupPath, "/"), "/", ".")
}

// LocalPath returns the absolute path for the given repository path,
// guaranteed to be contained in the storage base path.
func (s *Storage) LocalPath(rel string) (string, error) {
	return securejoin.SecureJoin(s.BasePath, rel)
}

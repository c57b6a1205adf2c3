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

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ArtifactSpec describes one published artifact.
type ArtifactSpec struct {
	// ShortName is the base name of the jar files the build produces,
	// and of the POM template.
	ShortName string `yaml:"shortName" json:"shortName"`

	// LongName is the Maven artifactId, used for directory and file
	// names in the repository tree.
	LongName string `yaml:"longName" json:"longName"`

	// GroupPath is the slash-separated form of the Maven groupId.
	GroupPath string `yaml:"groupPath" json:"groupPath"`
}

type artifactsFile struct {
	Artifacts []ArtifactSpec `yaml:"artifacts"`
}

// DefaultArtifacts returns the built-in artifact list.
func DefaultArtifacts() []ArtifactSpec {
	return []ArtifactSpec{
		{ShortName: "mongo", LongName: "mongo-java-driver", GroupPath: "org/mongodb"},
		{ShortName: "bson", LongName: "bson", GroupPath: "org/mongodb"},
	}
}

// LoadArtifacts returns the artifact list from the configured YAML file,
// or the built-in list if no file is configured.
func (o *Options) LoadArtifacts() ([]ArtifactSpec, error) {
	if o.ArtifactsConfig == "" {
		return DefaultArtifacts(), nil
	}

	b, err := os.ReadFile(o.ArtifactsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifacts config: %w", err)
	}

	var f artifactsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("failed to parse artifacts config '%s': %w", o.ArtifactsConfig, err)
	}
	if len(f.Artifacts) == 0 {
		return nil, fmt.Errorf("artifacts config '%s' lists no artifacts", o.ArtifactsConfig)
	}
	for i, a := range f.Artifacts {
		if a.ShortName == "" || a.LongName == "" || a.GroupPath == "" {
			return nil, fmt.Errorf("artifacts config '%s': entry %d is missing shortName, longName or groupPath",
				o.ArtifactsConfig, i)
		}
	}
	return f.Artifacts, nil
}

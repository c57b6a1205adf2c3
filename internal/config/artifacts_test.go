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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/mongodb-labs/maven-publish/internal/config"
)

func TestOptions_LoadArtifacts(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected []config.ArtifactSpec
		wantErr  string
	}{
		{
			name: "valid config",
			data: `artifacts:
  - shortName: mongo
    longName: mongo-java-driver
    groupPath: org/mongodb
  - shortName: bson
    longName: bson
    groupPath: org/mongodb
`,
			expected: []config.ArtifactSpec{
				{ShortName: "mongo", LongName: "mongo-java-driver", GroupPath: "org/mongodb"},
				{ShortName: "bson", LongName: "bson", GroupPath: "org/mongodb"},
			},
		},
		{
			name:    "empty list",
			data:    `artifacts: []`,
			wantErr: "lists no artifacts",
		},
		{
			name: "missing field",
			data: `artifacts:
  - shortName: mongo
    groupPath: org/mongodb
`,
			wantErr: "entry 0 is missing",
		},
		{
			name:    "malformed yaml",
			data:    `artifacts: [`,
			wantErr: "failed to parse artifacts config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			p := filepath.Join(t.TempDir(), "artifacts.yaml")
			g.Expect(os.WriteFile(p, []byte(tt.data), 0o644)).To(Succeed())

			opts := &config.Options{ArtifactsConfig: p}
			got, err := opts.LoadArtifacts()
			if tt.wantErr != "" {
				g.Expect(err).To(HaveOccurred())
				g.Expect(err.Error()).To(ContainSubstring(tt.wantErr))
				return
			}
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(got).To(Equal(tt.expected))
		})
	}
}

func TestOptions_LoadArtifacts_Defaults(t *testing.T) {
	g := NewWithT(t)

	opts := &config.Options{}
	got, err := opts.LoadArtifacts()
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal(config.DefaultArtifacts()))
}

func TestOptions_LoadArtifacts_MissingFile(t *testing.T) {
	g := NewWithT(t)

	opts := &config.Options{ArtifactsConfig: filepath.Join(t.TempDir(), "absent.yaml")}
	_, err := opts.LoadArtifacts()
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).To(ContainSubstring("failed to read artifacts config"))
}

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

package pom_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/mongodb-labs/maven-publish/internal/pom"
)

func TestTemplatePath(t *testing.T) {
	g := NewWithT(t)

	g.Expect(pom.TemplatePath("templates", "mongo")).To(Equal(filepath.Join("templates", "mongo.pom.template")))
	g.Expect(pom.TemplatePath(".", "bson")).To(Equal("bson.pom.template"))
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		version  string
		expected string
		wantErr  string
	}{
		{
			name:     "single reference",
			template: `<project><version>$VERSION</version></project>`,
			version:  "3.2.0",
			expected: `<project><version>3.2.0</version></project>`,
		},
		{
			name: "every occurrence is replaced",
			template: `<project>
  <version>$VERSION</version>
  <name>driver ${VERSION}</name>
</project>`,
			version: "2.14.1",
			expected: `<project>
  <version>2.14.1</version>
  <name>driver 2.14.1</name>
</project>`,
		},
		{
			name:     "template without references is returned as is",
			template: `<project><version>1.0</version></project>`,
			version:  "3.2.0",
			expected: `<project><version>1.0</version></project>`,
		},
		{
			name:     "unknown variable",
			template: `<project><version>$VERSION</version><url>$REPO_URL</url></project>`,
			version:  "3.2.0",
			wantErr:  "failed to render POM template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			dir := t.TempDir()
			p := filepath.Join(dir, "mongo.pom.template")
			g.Expect(os.WriteFile(p, []byte(tt.template), 0o644)).To(Succeed())

			got, err := pom.Render(p, tt.version)
			if tt.wantErr != "" {
				g.Expect(err).To(HaveOccurred())
				g.Expect(err.Error()).To(ContainSubstring(tt.wantErr))
				return
			}
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(string(got)).To(Equal(tt.expected))
		})
	}
}

func TestRender_MissingTemplate(t *testing.T) {
	g := NewWithT(t)

	_, err := pom.Render(filepath.Join(t.TempDir(), "absent.pom.template"), "3.2.0")
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).To(ContainSubstring("failed to read POM template"))
}

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

// Package pom renders Maven POM descriptors from templates. A template
// is the final descriptor with the version replaced by the variable
// reference $VERSION.
package pom

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fluxcd/pkg/envsubst"
)

// TemplateExt is the suffix appended to an artifact short name to
// locate its POM template.
const TemplateExt = ".pom.template"

// versionVar is the sole variable a template may reference.
const versionVar = "VERSION"

// TemplatePath returns the POM template location for the given artifact
// short name.
func TemplatePath(templateDir, shortName string) string {
	return filepath.Join(templateDir, shortName+TemplateExt)
}

// Render reads the template at templatePath and substitutes every
// $VERSION reference with the given version string. Substitution runs
// in strict mode, any other variable reference in the template is an
// error.
func Render(templatePath, version string) ([]byte, error) {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read POM template: %w", err)
	}

	vars := map[string]string{versionVar: version}
	output, err := envsubst.Eval(string(data), func(s string) (string, bool) {
		v, exists := vars[s]
		return v, exists
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render POM template '%s': %w", templatePath, err)
	}
	return []byte(output), nil
}

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
	"testing"

	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/mongodb-labs/maven-publish/internal/config"
)

func TestOptions_BindFlags(t *testing.T) {
	tests := []struct {
		name        string
		commandLine []string
		env         map[string]string
		expected    config.Options
	}{
		{
			name:        "defaults",
			commandLine: []string{},
			expected: config.Options{
				DestinationRoot:  "build/repo",
				JarDir:           ".",
				TemplateDir:      ".",
				AntBin:           "ant",
				JarTarget:        "alljars",
				GenerateMetadata: true,
			},
		},
		{
			name: "flags override defaults",
			commandLine: []string{
				"--destination-root=/srv/maven",
				"--jar-dir=out",
				"--template-dir=poms",
				"--ant-bin=/opt/ant/bin/ant",
				"--jar-target=jar",
				"--skip-clean",
				"--metadata=false",
				"--require-semver",
				"--require-clean-worktree",
				"--artifacts-config=artifacts.yaml",
				"--bucket=releases",
				"--bucket-region=us-east-1",
				"--bucket-endpoint=http://localhost:9000",
				"--notify-url=http://localhost:8181/hook",
			},
			expected: config.Options{
				DestinationRoot:      "/srv/maven",
				JarDir:               "out",
				TemplateDir:          "poms",
				AntBin:               "/opt/ant/bin/ant",
				JarTarget:            "jar",
				SkipClean:            true,
				GenerateMetadata:     false,
				RequireSemVer:        true,
				RequireCleanWorktree: true,
				ArtifactsConfig:      "artifacts.yaml",
				Bucket:               "releases",
				BucketRegion:         "us-east-1",
				BucketEndpoint:       "http://localhost:9000",
				NotifyURL:            "http://localhost:8181/hook",
			},
		},
		{
			name:        "environment overrides defaults",
			commandLine: []string{},
			env: map[string]string{
				"PUBLISH_ROOT":    "/mnt/repo",
				"PUBLISH_JAR_DIR": "dist",
				"PUBLISH_ANT_BIN": "ant-1.8",
				"PUBLISH_BUCKET":  "downloads",
			},
			expected: config.Options{
				DestinationRoot:  "/mnt/repo",
				JarDir:           "dist",
				TemplateDir:      ".",
				AntBin:           "ant-1.8",
				JarTarget:        "alljars",
				GenerateMetadata: true,
				Bucket:           "downloads",
			},
		},
		{
			name:        "flags take precedence over environment",
			commandLine: []string{"--destination-root=/srv/maven"},
			env: map[string]string{
				"PUBLISH_ROOT": "/mnt/repo",
			},
			expected: config.Options{
				DestinationRoot:  "/srv/maven",
				JarDir:           ".",
				TemplateDir:      ".",
				AntBin:           "ant",
				JarTarget:        "alljars",
				GenerateMetadata: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			opts := &config.Options{}
			opts.BindFlags(fs)

			g.Expect(fs.Parse(tt.commandLine)).To(Succeed())
			g.Expect(*opts).To(Equal(tt.expected))
		})
	}
}

func TestOptions_BindServerFlags(t *testing.T) {
	g := NewWithT(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts := &config.Options{}
	opts.BindServerFlags(fs)

	g.Expect(fs.Parse([]string{})).To(Succeed())
	g.Expect(opts.ServeAddress).To(Equal(":8080"))

	fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts = &config.Options{}
	opts.BindServerFlags(fs)

	g.Expect(fs.Parse([]string{"--serve-addr=:9000"})).To(Succeed())
	g.Expect(opts.ServeAddress).To(Equal(":9000"))
}

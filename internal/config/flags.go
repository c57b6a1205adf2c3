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
	"os"

	"github.com/spf13/pflag"
)

const (
	flagDestinationRoot    = "destination-root"
	envDestinationRoot     = "PUBLISH_ROOT"
	defaultDestinationRoot = "build/repo"

	flagJarDir    = "jar-dir"
	envJarDir     = "PUBLISH_JAR_DIR"
	defaultJarDir = "."

	flagTemplateDir    = "template-dir"
	envTemplateDir     = "PUBLISH_TEMPLATE_DIR"
	defaultTemplateDir = "."

	flagAntBin    = "ant-bin"
	envAntBin     = "PUBLISH_ANT_BIN"
	defaultAntBin = "ant"

	flagJarTarget    = "jar-target"
	defaultJarTarget = "alljars"

	flagSkipClean = "skip-clean"

	flagGenerateMetadata    = "metadata"
	defaultGenerateMetadata = true

	flagRequireSemVer = "require-semver"

	flagRequireCleanWorktree = "require-clean-worktree"

	flagArtifactsConfig = "artifacts-config"
	envArtifactsConfig  = "PUBLISH_ARTIFACTS_CONFIG"

	flagBucket = "bucket"
	envBucket  = "PUBLISH_BUCKET"

	flagBucketRegion = "bucket-region"
	envBucketRegion  = "PUBLISH_BUCKET_REGION"

	flagBucketEndpoint = "bucket-endpoint"
	envBucketEndpoint  = "PUBLISH_BUCKET_ENDPOINT"

	flagNotifyURL = "notify-url"
	envNotifyURL  = "PUBLISH_NOTIFY_URL"

	flagServeAddress    = "serve-addr"
	envServeAddress     = "PUBLISH_SERVE_ADDR"
	defaultServeAddress = ":8080"
)

// BindFlags will parse the given pflag.FlagSet for the publish command
// and set the Options accordingly.
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	o.BindTreeFlags(fs)
	o.BindArtifactFlags(fs)

	fs.StringVar(&o.JarDir, flagJarDir,
		envOrDefault(envJarDir, defaultJarDir),
		"The directory the build writes jar files to.")

	fs.StringVar(&o.TemplateDir, flagTemplateDir,
		envOrDefault(envTemplateDir, defaultTemplateDir),
		"The directory holding the POM templates.")

	fs.StringVar(&o.AntBin, flagAntBin,
		envOrDefault(envAntBin, defaultAntBin),
		"The build command to invoke.")

	fs.StringVar(&o.JarTarget, flagJarTarget,
		defaultJarTarget,
		"The build target that produces the jar files.")

	fs.BoolVar(&o.SkipClean, flagSkipClean,
		false,
		"Skip the clean invocation before the jar build.")

	fs.BoolVar(&o.GenerateMetadata, flagGenerateMetadata,
		defaultGenerateMetadata,
		"Regenerate maven-metadata.xml files after publishing.")

	fs.BoolVar(&o.RequireSemVer, flagRequireSemVer,
		false,
		"Reject versions that do not parse as semver.")

	fs.BoolVar(&o.RequireCleanWorktree, flagRequireCleanWorktree,
		false,
		"Refuse to publish from a dirty git worktree.")

	fs.StringVar(&o.Bucket, flagBucket,
		envOrDefault(envBucket, ""),
		"The object storage bucket releases are uploaded to. Uploads are disabled when empty.")

	fs.StringVar(&o.BucketRegion, flagBucketRegion,
		envOrDefault(envBucketRegion, ""),
		"The region of the object storage bucket.")

	fs.StringVar(&o.BucketEndpoint, flagBucketEndpoint,
		envOrDefault(envBucketEndpoint, ""),
		"The object storage endpoint, for S3-compatible stores.")

	fs.StringVar(&o.NotifyURL, flagNotifyURL,
		envOrDefault(envNotifyURL, ""),
		"The address of a webhook receiving publish events. Notifications are disabled when empty.")
}

// BindTreeFlags registers the flags shared by all commands operating on
// the local repository tree.
func (o *Options) BindTreeFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.DestinationRoot, flagDestinationRoot,
		envOrDefault(envDestinationRoot, defaultDestinationRoot),
		"The path to the root directory of the local Maven repository tree.")
}

// BindArtifactFlags registers the flags of commands operating on the
// artifact list.
func (o *Options) BindArtifactFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ArtifactsConfig, flagArtifactsConfig,
		envOrDefault(envArtifactsConfig, ""),
		"The path to a YAML file overriding the built-in artifact list.")
}

// BindServerFlags registers the flags for the repository file server.
func (o *Options) BindServerFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ServeAddress, flagServeAddress,
		envOrDefault(envServeAddress, defaultServeAddress),
		"The address the repository file server will bind to.")
}

// envOrDefault returns the value of the environment variable named by the key.
// If the variable is empty or not present, it returns the defaultValue instead.
func envOrDefault(envName, defaultValue string) string {
	ret := os.Getenv(envName)
	if ret != "" {
		return ret
	}

	return defaultValue
}

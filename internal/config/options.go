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

// Options contains configuration settings for the publisher.
type Options struct {
	// DestinationRoot is the path to the root directory of the local
	// Maven repository tree.
	DestinationRoot string `json:"destinationRoot"`

	// JarDir is the directory the build writes jar files to.
	JarDir string `json:"jarDir"`

	// TemplateDir is the directory holding the POM templates.
	TemplateDir string `json:"templateDir"`

	// AntBin is the build command to invoke.
	AntBin string `json:"antBin"`

	// JarTarget is the build target that produces the jar files.
	JarTarget string `json:"jarTarget"`

	// SkipClean disables the clean invocation before the jar build.
	SkipClean bool `json:"skipClean"`

	// GenerateMetadata controls whether maven-metadata.xml files are
	// regenerated after a publish.
	GenerateMetadata bool `json:"generateMetadata"`

	// RequireSemVer rejects versions that do not parse as semver.
	RequireSemVer bool `json:"requireSemVer"`

	// RequireCleanWorktree refuses to publish from a dirty git worktree.
	RequireCleanWorktree bool `json:"requireCleanWorktree"`

	// ArtifactsConfig is the path to a YAML file overriding the built-in
	// artifact list.
	ArtifactsConfig string `json:"artifactsConfig"`

	// Bucket is the name of the object storage bucket releases are
	// uploaded to. Uploads are disabled when empty.
	Bucket string `json:"bucket"`

	// BucketRegion is the region of the bucket.
	BucketRegion string `json:"bucketRegion"`

	// BucketEndpoint overrides the object storage endpoint, for
	// S3-compatible stores.
	BucketEndpoint string `json:"bucketEndpoint"`

	// NotifyURL is the address of a webhook receiving publish events.
	// Notifications are disabled when empty.
	NotifyURL string `json:"notifyURL"`

	// ServeAddress is the host and port the repository file server
	// binds to.
	ServeAddress string `json:"serveAddress"`
}

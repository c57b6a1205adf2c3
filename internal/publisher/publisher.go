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

// Package publisher coordinates the build, staging, indexing and upload
// steps of a release.
package publisher

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/mongodb-labs/maven-publish/internal/build"
	"github.com/mongodb-labs/maven-publish/internal/config"
	"github.com/mongodb-labs/maven-publish/internal/metadata"
	"github.com/mongodb-labs/maven-publish/internal/pom"
	"github.com/mongodb-labs/maven-publish/internal/repository"
	"github.com/mongodb-labs/maven-publish/internal/upload"
)

// Request describes one publish invocation. It is constructed once per
// invocation and never mutated.
type Request struct {
	// Version is the version string to publish under.
	Version string

	// Artifacts is the list of artifacts covered by the release.
	Artifacts []config.ArtifactSpec
}

// Publisher runs the release flow: build the jars, copy them into the
// repository tree, render descriptors, write checksums, regenerate the
// metadata indexes and upload to object storage.
type Publisher struct {
	Opts     config.Options
	Storage  *repository.Storage
	Runner   *build.Runner
	Metadata *metadata.Generator

	// Uploader pushes release files to object storage. Nil disables
	// uploads.
	Uploader *upload.Uploader

	Log logr.Logger
}

// New wires a Publisher from the given options. The repository root is
// created if it does not exist. An uploader is only constructed when a
// bucket is configured.
func New(ctx context.Context, opts config.Options, log logr.Logger) (*Publisher, error) {
	storage, err := repository.NewStorage(opts.DestinationRoot)
	if err != nil {
		return nil, err
	}

	p := &Publisher{
		Opts:     opts,
		Storage:  storage,
		Runner:   build.NewRunner(opts.AntBin, "", log),
		Metadata: metadata.NewGenerator(storage),
		Log:      log,
	}

	if opts.Bucket != "" {
		uploader, err := upload.New(ctx, upload.Options{
			Bucket:   opts.Bucket,
			Region:   opts.BucketRegion,
			Endpoint: opts.BucketEndpoint,
		}, log)
		if err != nil {
			return nil, err
		}
		p.Uploader = uploader
	}

	return p, nil
}

// Publish runs the full release flow for the given request. Any failure
// aborts the publish and files written before the failure are left in
// place. Re-publishing a version is safe, every write is an idempotent
// overwrite.
func (p *Publisher) Publish(ctx context.Context, req Request) error {
	if req.Version == "" {
		return fmt.Errorf("version cannot be empty")
	}
	if len(req.Artifacts) == 0 {
		return fmt.Errorf("no artifacts to publish")
	}

	if err := p.Build(ctx); err != nil {
		return err
	}

	for _, a := range req.Artifacts {
		if err := p.Stage(a, req.Version); err != nil {
			return err
		}
	}

	if p.Opts.GenerateMetadata {
		for _, a := range req.Artifacts {
			if err := p.Metadata.Generate(coordinates(a, req.Version)); err != nil {
				return err
			}
		}
	}

	if p.Uploader != nil {
		if err := p.Upload(ctx, req); err != nil {
			return err
		}
	}

	p.Log.Info("publish complete", "version", req.Version, "root", p.Storage.BasePath)
	return nil
}

// Build runs the clean target followed by the jar target, checking the
// output of each invocation for the success marker. It returns a
// *BuildError when an invocation does not report success, before
// anything is written to the repository tree.
func (p *Publisher) Build(ctx context.Context) error {
	if !p.Opts.SkipClean {
		if err := p.runTarget(ctx, "clean"); err != nil {
			return err
		}
	}
	return p.runTarget(ctx, p.Opts.JarTarget)
}

func (p *Publisher) runTarget(ctx context.Context, target string) error {
	res, err := p.Runner.Run(ctx, target)
	if err != nil {
		return err
	}
	if !res.Succeeded(build.SuccessMarker) {
		return &BuildError{Result: res}
	}
	return nil
}

// Stage copies the jar files of the artifact into its version
// directory, writes the checksum of the primary jar, and renders the
// POM descriptor. The checksum is computed from the bytes written to
// the destination.
func (p *Publisher) Stage(a config.ArtifactSpec, ver string) error {
	c := coordinates(a, ver)
	verDir := c.VersionDir()

	if err := p.Storage.MkdirAll(verDir); err != nil {
		return fmt.Errorf("failed to create version directory '%s': %w", verDir, err)
	}

	copies := []struct {
		src string
		dst string
	}{
		{src: a.ShortName + ".jar", dst: c.Stem() + ".jar"},
		{src: a.ShortName + "-sources.jar", dst: c.Stem() + "-sources.jar"},
		{src: a.ShortName + "-javadoc.jar", dst: c.Stem() + "-javadoc.jar"},
	}

	for i, cp := range copies {
		src := filepath.Join(p.Opts.JarDir, cp.src)
		dst := path.Join(verDir, cp.dst)
		d, err := p.Storage.CopyFromPath(src, dst)
		if err != nil {
			return fmt.Errorf("failed to copy '%s': %w", src, err)
		}
		p.Log.Info("copied artifact", "source", src, "destination", dst)

		if i == 0 {
			if err := p.Storage.WriteChecksum(dst+".sha1", d); err != nil {
				return fmt.Errorf("failed to write checksum for '%s': %w", dst, err)
			}
		}
	}

	data, err := pom.Render(pom.TemplatePath(p.Opts.TemplateDir, a.ShortName), ver)
	if err != nil {
		return err
	}
	pomPath := path.Join(verDir, c.Stem()+".pom")
	if err := p.Storage.WriteFile(pomPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write POM '%s': %w", pomPath, err)
	}
	p.Log.Info("rendered descriptor", "destination", pomPath)

	return nil
}

// Upload pushes each artifact's primary jar and POM descriptor to the
// configured bucket. Object keys mirror the repository tree.
func (p *Publisher) Upload(ctx context.Context, req Request) error {
	for _, a := range req.Artifacts {
		c := coordinates(a, req.Version)
		for _, name := range []string{c.Stem() + ".jar", c.Stem() + ".pom"} {
			key := path.Join(c.VersionDir(), name)
			localPath, err := p.Storage.LocalPath(key)
			if err != nil {
				return err
			}
			if err := p.Uploader.UploadFile(ctx, key, localPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func coordinates(a config.ArtifactSpec, ver string) repository.Coordinates {
	return repository.Coordinates{
		GroupPath:  a.GroupPath,
		ArtifactID: a.LongName,
		Version:    ver,
	}
}

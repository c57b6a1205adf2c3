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

// Package upload copies release files to S3-compatible object storage.
package upload

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/go-logr/logr"
)

// ObjectPutter is the part of the S3 API the uploader relies on.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Options configures a new Uploader.
type Options struct {
	// Bucket is the name of the bucket release files are stored in.
	Bucket string

	// Region is the region of the bucket. Empty falls back to the
	// ambient AWS configuration.
	Region string

	// Endpoint overrides the service endpoint, for S3-compatible
	// stores. Path-style addressing is used when set.
	Endpoint string
}

// Uploader copies release files to an object storage bucket, marked
// publicly readable.
type Uploader struct {
	api    ObjectPutter
	bucket string
	log    logr.Logger
}

// New returns an Uploader authenticating through the ambient AWS
// credential chain. Request retries are disabled, a failed upload
// surfaces immediately.
func New(ctx context.Context, opts Options, log logr.Logger) (*Uploader, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("bucket cannot be empty")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryMaxAttempts(1),
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Uploader{api: client, bucket: opts.Bucket, log: log}, nil
}

// NewWithClient returns an Uploader backed by the given client.
func NewWithClient(api ObjectPutter, bucket string, log logr.Logger) *Uploader {
	return &Uploader{api: api, bucket: bucket, log: log}
}

// UploadFile stores the file at filePath under the given key, publicly
// readable.
func (u *Uploader) UploadFile(ctx context.Context, key, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open '%s': %w", filePath, err)
	}
	defer f.Close()

	u.log.Info("uploading object", "bucket", u.bucket, "key", key)

	if _, err := u.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        f,
		ACL:         types.ObjectCannedACLPublicRead,
		ContentType: aws.String(ContentType(key)),
	}); err != nil {
		return fmt.Errorf("failed to upload '%s' to bucket '%s': %w", key, u.bucket, err)
	}
	return nil
}

// ContentType returns the media type for a repository file name.
func ContentType(name string) string {
	switch {
	case strings.HasSuffix(name, ".jar"):
		return "application/java-archive"
	case strings.HasSuffix(name, ".pom"), strings.HasSuffix(name, ".xml"):
		return "application/xml"
	default:
		return "application/octet-stream"
	}
}

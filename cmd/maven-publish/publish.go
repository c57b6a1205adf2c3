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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/mongodb-labs/maven-publish/internal/config"
	"github.com/mongodb-labs/maven-publish/internal/logging"
	"github.com/mongodb-labs/maven-publish/internal/notify"
	"github.com/mongodb-labs/maven-publish/internal/publisher"
	"github.com/mongodb-labs/maven-publish/internal/repository"
	"github.com/mongodb-labs/maven-publish/internal/version"
	"github.com/mongodb-labs/maven-publish/internal/worktree"
)

var publishCmd = &cobra.Command{
	Use:   "publish <version> [destination-root]",
	Short: "Build the driver jars and publish them to the repository tree",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runPublish,
}

var publishOpts config.Options

func init() {
	rootCmd.AddCommand(publishCmd)

	publishOpts.BindFlags(publishCmd.Flags())
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()

	log, err := logging.NewLogger(rootCmdFlags.verbose)
	if err != nil {
		return err
	}

	ver := args[0]
	if len(args) == 2 {
		publishOpts.DestinationRoot = args[1]
	}

	if publishOpts.RequireSemVer {
		if _, err := version.ParseVersion(ver); err != nil {
			return fmt.Errorf("refusing to publish version '%s': %w", ver, err)
		}
	}

	if publishOpts.RequireCleanWorktree {
		status, err := worktree.Check(".")
		if err != nil {
			return fmt.Errorf("failed to inspect the working tree: %w", err)
		}
		if !status.Clean {
			return fmt.Errorf("the working tree at revision %s has uncommitted changes, refusing to publish", status.Head)
		}
		log.Info("working tree is clean", "revision", status.Head)
	}

	artifacts, err := publishOpts.LoadArtifacts()
	if err != nil {
		return err
	}

	pub, err := publisher.New(ctx, publishOpts, log)
	if err != nil {
		return err
	}

	var rec *notify.EventRecorder
	if publishOpts.NotifyURL != "" {
		if rec, err = notify.NewEventRecorder(publishOpts.NotifyURL, "maven-publish"); err != nil {
			return fmt.Errorf("failed to configure notifications: %w", err)
		}
	}

	req := publisher.Request{
		Version:   ver,
		Artifacts: artifacts,
	}
	if err := pub.Publish(ctx, req); err != nil {
		// Surface the captured build output before failing, the marker
		// line and the compiler errors live in there.
		var buildErr *publisher.BuildError
		if errors.As(err, &buildErr) {
			fmt.Fprint(os.Stderr, buildErr.Result.Stdout)
			fmt.Fprint(os.Stderr, buildErr.Result.Stderr)
		}
		notifyResult(rec, log, req, err)
		return err
	}

	notifyResult(rec, log, req, nil)
	return nil
}

// notifyResult reports the outcome of a publish run to the configured
// webhook. Notification failures are logged, they do not fail the run.
func notifyResult(rec *notify.EventRecorder, log logr.Logger, req publisher.Request, pubErr error) {
	if rec == nil {
		return
	}

	var coords []string
	for _, a := range req.Artifacts {
		c := repository.Coordinates{GroupPath: a.GroupPath, ArtifactID: a.LongName}
		coords = append(coords, c.GroupID()+":"+c.ArtifactID)
	}

	meta := map[string]string{
		"destinationRoot": publishOpts.DestinationRoot,
	}
	if publishOpts.Bucket != "" {
		meta["bucket"] = publishOpts.Bucket
	}

	var err error
	if pubErr != nil {
		err = rec.EventErrorf(req.Version, coords, meta, "PublishFailed",
			"publish of version %s failed: %s", req.Version, pubErr)
	} else {
		err = rec.EventInfof(req.Version, coords, meta, "PublishSucceeded",
			"published %d artifacts at version %s", len(req.Artifacts), req.Version)
	}
	if err != nil {
		log.Error(err, "failed to post the publish event")
	}
}

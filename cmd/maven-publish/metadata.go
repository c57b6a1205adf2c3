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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mongodb-labs/maven-publish/internal/config"
	"github.com/mongodb-labs/maven-publish/internal/logging"
	"github.com/mongodb-labs/maven-publish/internal/metadata"
	"github.com/mongodb-labs/maven-publish/internal/repository"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata [destination-root]",
	Short: "Regenerate the maven-metadata.xml documents from the repository tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMetadata,
}

var metadataOpts config.Options

func init() {
	rootCmd.AddCommand(metadataCmd)

	metadataOpts.BindTreeFlags(metadataCmd.Flags())
	metadataOpts.BindArtifactFlags(metadataCmd.Flags())
}

func runMetadata(cmd *cobra.Command, args []string) error {
	log, err := logging.NewLogger(rootCmdFlags.verbose)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		metadataOpts.DestinationRoot = args[0]
	}

	artifacts, err := metadataOpts.LoadArtifacts()
	if err != nil {
		return err
	}

	storage, err := repository.NewStorage(metadataOpts.DestinationRoot)
	if err != nil {
		return err
	}
	gen := metadata.NewGenerator(storage)

	for _, a := range artifacts {
		c := repository.Coordinates{GroupPath: a.GroupPath, ArtifactID: a.LongName}
		if err := gen.Generate(c); err != nil {
			return fmt.Errorf("failed to generate metadata for '%s': %w", a.LongName, err)
		}
		log.Info("regenerated metadata", "artifact", c.GroupID()+":"+c.ArtifactID)
	}

	return nil
}

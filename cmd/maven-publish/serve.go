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
	"github.com/spf13/cobra"

	"github.com/mongodb-labs/maven-publish/internal/config"
	"github.com/mongodb-labs/maven-publish/internal/logging"
	"github.com/mongodb-labs/maven-publish/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve [destination-root]",
	Short: "Serve the repository tree over HTTP",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runServe,
}

var serveOpts config.Options

func init() {
	rootCmd.AddCommand(serveCmd)

	serveOpts.BindTreeFlags(serveCmd.Flags())
	serveOpts.BindServerFlags(serveCmd.Flags())
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()

	log, err := logging.NewLogger(rootCmdFlags.verbose)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		serveOpts.DestinationRoot = args[0]
	}

	log.Info("serving the repository tree",
		"addr", serveOpts.ServeAddress, "root", serveOpts.DestinationRoot)
	return server.Start(ctx, serveOpts.ServeAddress, serveOpts.DestinationRoot)
}

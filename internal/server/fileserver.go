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

// Package server exposes the local repository tree over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Start starts a blocking HTTP file server exposing the repository tree
// at root on addr. It supports graceful shutdown via the provided
// context.
func Start(ctx context.Context, addr, root string) error {
	if addr == "" {
		return fmt.Errorf("server address cannot be empty")
	}
	if root == "" {
		return fmt.Errorf("repository root cannot be empty")
	}

	fs := http.FileServer(http.Dir(root))
	mux := http.NewServeMux()
	mux.Handle("/", fs)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

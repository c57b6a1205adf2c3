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

// Package worktree inspects the git checkout a release is built from.
package worktree

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// Status describes the state of the git worktree enclosing a directory.
type Status struct {
	// Head is the commit hash the worktree is checked out at.
	Head string

	// Clean reports whether the worktree has no uncommitted changes.
	Clean bool
}

// Check opens the repository enclosing dir and returns its worktree
// status. The .git directory is detected upwards from dir.
func Check(dir string) (Status, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Status{}, fmt.Errorf("failed to open git repository enclosing '%s': %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return Status{}, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return Status{}, fmt.Errorf("failed to open worktree: %w", err)
	}
	st, err := wt.Status()
	if err != nil {
		return Status{}, fmt.Errorf("failed to get worktree status: %w", err)
	}

	return Status{
		Head:  head.Hash().String(),
		Clean: st.IsClean(),
	}, nil
}

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

// Package build invokes Ant build targets and captures their output.
package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-logr/logr"
)

// SuccessMarker is the substring the build output must contain for an
// invocation to count as successful.
const SuccessMarker = "SUCCESSFUL"

// Result holds the captured output of a single build invocation.
type Result struct {
	// Target is the build target that was invoked.
	Target string

	// Stdout is the captured standard output of the invocation.
	Stdout string

	// Stderr is the captured standard error of the invocation.
	Stderr string
}

// Succeeded reports whether the standard output contains the given
// success marker. The exit status of the build process is deliberately
// not part of the contract.
func (r Result) Succeeded(marker string) bool {
	return strings.Contains(r.Stdout, marker)
}

// Runner invokes build targets and captures their output.
type Runner struct {
	// Bin is the build command to invoke.
	Bin string

	// Dir is the working directory of build invocations. Empty means
	// the current directory.
	Dir string

	// Log is the logger build invocations are reported to.
	Log logr.Logger
}

// NewRunner returns a Runner for the given build command.
func NewRunner(bin, dir string, log logr.Logger) *Runner {
	return &Runner{Bin: bin, Dir: dir, Log: log}
}

// Run invokes the given build target and returns its captured output.
// A non-zero exit status is not an error, the caller decides success
// based on the Result. An error is returned when the process cannot be
// started, or when the context is canceled before it finishes.
func (r *Runner) Run(ctx context.Context, target string) (Result, error) {
	r.Log.Info("running build target", "bin", r.Bin, "target", target)

	cmd := exec.CommandContext(ctx, r.Bin, target)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Target: target, Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return res, fmt.Errorf("failed to run '%s %s': %w", r.Bin, target, err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, fmt.Errorf("build target '%s' interrupted: %w", target, ctxErr)
		}
	}
	return res, nil
}

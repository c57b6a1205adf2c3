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

package build_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	. "github.com/onsi/gomega"

	"github.com/mongodb-labs/maven-publish/internal/build"
)

func stubBin(t *testing.T, script string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "ant")
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("while writing stub binary: %v", err)
	}
	return p
}

func TestRunner_Run(t *testing.T) {
	g := NewWithT(t)

	bin := stubBin(t, `echo "BUILD $1"
echo "BUILD SUCCESSFUL"
`)
	r := build.NewRunner(bin, "", logr.Discard())

	res, err := r.Run(context.Background(), "alljars")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(res.Target).To(Equal("alljars"))
	g.Expect(res.Stdout).To(ContainSubstring("BUILD alljars"))
	g.Expect(res.Succeeded(build.SuccessMarker)).To(BeTrue())
}

func TestRunner_Run_Failure(t *testing.T) {
	g := NewWithT(t)

	bin := stubBin(t, `echo "BUILD FAILED"
echo "compile error" 1>&2
exit 1
`)
	r := build.NewRunner(bin, "", logr.Discard())

	// A non-zero exit status is not an error, the marker decides.
	res, err := r.Run(context.Background(), "alljars")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(res.Succeeded(build.SuccessMarker)).To(BeFalse())
	g.Expect(res.Stdout).To(ContainSubstring("BUILD FAILED"))
	g.Expect(res.Stderr).To(ContainSubstring("compile error"))
}

func TestRunner_Run_MarkerOnStderrDoesNotCount(t *testing.T) {
	g := NewWithT(t)

	bin := stubBin(t, `echo "BUILD SUCCESSFUL" 1>&2
`)
	r := build.NewRunner(bin, "", logr.Discard())

	res, err := r.Run(context.Background(), "clean")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(res.Succeeded(build.SuccessMarker)).To(BeFalse())
}

func TestRunner_Run_MissingBinary(t *testing.T) {
	g := NewWithT(t)

	r := build.NewRunner(filepath.Join(t.TempDir(), "absent"), "", logr.Discard())

	_, err := r.Run(context.Background(), "clean")
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).To(ContainSubstring("failed to run"))
}

func TestRunner_Run_CanceledContext(t *testing.T) {
	g := NewWithT(t)

	bin := stubBin(t, `sleep 10
echo "BUILD SUCCESSFUL"
`)
	r := build.NewRunner(bin, "", logr.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, "alljars")
	g.Expect(err).To(HaveOccurred())
}

func TestRunner_Run_WorkingDirectory(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()
	bin := stubBin(t, `pwd
`)
	r := build.NewRunner(bin, dir, logr.Discard())

	res, err := r.Run(context.Background(), "clean")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(res.Stdout).To(ContainSubstring(filepath.Base(dir)))
}

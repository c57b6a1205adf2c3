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

package publisher

import (
	"fmt"

	"github.com/mongodb-labs/maven-publish/internal/build"
)

// BuildError is returned when a build invocation does not report
// success. It carries the captured output streams for diagnostics.
type BuildError struct {
	Result build.Result
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("build target '%s' did not report success", e.Result.Target)
}

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

package digest

import (
	"crypto"
	_ "crypto/sha1"
	"fmt"

	"github.com/opencontainers/go-digest"
)

// SHA1 is the digest algorithm Maven repositories use for checksum
// sidecar files. It is registered here as the upstream library does not
// enable it by default.
const SHA1 digest.Algorithm = "sha1"

// Canonical is the algorithm checksum files are written with.
var Canonical = SHA1

func init() {
	digest.RegisterAlgorithm(SHA1, crypto.SHA1)
}

// AlgorithmForName returns the digest algorithm for the provided name,
// or an error of type digest.ErrDigestUnsupported if the algorithm is
// unavailable.
func AlgorithmForName(name string) (digest.Algorithm, error) {
	a := digest.Algorithm(name)
	if !a.Available() {
		return "", fmt.Errorf("%w: %s", digest.ErrDigestUnsupported, name)
	}
	return a, nil
}

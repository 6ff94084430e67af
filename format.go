// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tokdiff

import (
	"fmt"
	"strings"
)

// Format selects the algorithm used to find the common tokens of both texts.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Format
type Format int

const (
	// Histogram splits the inputs at the token that occurs least often in both.
	Histogram Format = iota

	// Patience splits the inputs at tokens that occur exactly once in both. Sections without such
	// tokens are compared using Histogram.
	Patience
)

// ParseFormat returns the format with the given name. The comparison ignores case.
func ParseFormat(name string) (Format, error) {
	for _, f := range []Format{Histogram, Patience} {
		if strings.EqualFold(f.String(), name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown diff format %q", name)
}

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

// Package align maps a common subsequence back to positions in the sequences it was computed
// from.
package align

import (
	"errors"
	"fmt"
)

// ErrMisaligned is returned if an element of a common subsequence can't be found in one of the
// original sequences. This is always a bug in the algorithm that produced the subsequence.
var ErrMisaligned = errors.New("common subsequence does not align with input")

// Positions returns the indices of the elements of lcs in x and y. Duplicates are resolved by
// using the nearest occurrence after the previously matched position, so that both xs and ys are
// strictly increasing and have the same length as lcs.
func Positions[T comparable](lcs, x, y []T) (xs, ys []int, err error) {
	if len(lcs) == 0 {
		return nil, nil, nil
	}
	buf := make([]int, 2*len(lcs))
	xs, ys = buf[:0:len(lcs)], buf[len(lcs):len(lcs)]
	s, t := 0, 0 // cursors into x and y
	for i, e := range lcs {
		for s < len(x) && x[s] != e {
			s++
		}
		if s == len(x) {
			return nil, nil, fmt.Errorf("%w: element %d (%v) not found in x", ErrMisaligned, i, e)
		}
		xs = append(xs, s)
		s++

		for t < len(y) && y[t] != e {
			t++
		}
		if t == len(y) {
			return nil, nil, fmt.Errorf("%w: element %d (%v) not found in y", ErrMisaligned, i, e)
		}
		ys = append(ys, t)
		t++
	}
	return xs, ys, nil
}

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

// Package histogram implements the histogram variant of a longest common subsequence search.
//
// The result is not guaranteed to be the longest common subsequence. Equal elements at the
// boundaries are trusted to be part of the result, and the middle section is split recursively
// at the element that occurs the least number of times in both inputs. Elements that occur often
// are unlikely to be meaningful anchors, while rare elements usually are.
package histogram

import "cmp"

// record is the histogram entry for one distinct element of the current section.
type record struct {
	xCount, xLast int
	yCount, yLast int
}

// LCS returns an approximation of the longest common subsequence of x and y. The elements of the
// result appear in the same order in both x and y.
//
// If several elements share the lowest combined number of occurrences, the smallest element is
// used as pivot. The result is therefore fully determined by x and y.
func LCS[T cmp.Ordered](x, y []T) []T {
	return compute(x, y, nil)
}

// compute appends the common subsequence of x and y to out and returns the extended slice.
func compute[T cmp.Ordered](x, y []T, out []T) []T {
	// Strip common prefix.
	pre := 0
	for pre < len(x) && pre < len(y) && x[pre] == y[pre] {
		pre++
	}
	out = append(out, x[:pre]...)
	x, y = x[pre:], y[pre:]

	// Strip common suffix.
	suf := 0
	for suf < len(x) && suf < len(y) && x[len(x)-1-suf] == y[len(y)-1-suf] {
		suf++
	}
	suffix := x[len(x)-suf:]
	x, y = x[:len(x)-suf], y[:len(y)-suf]

	if len(x) > 0 && len(y) > 0 {
		if pivot, ok := findPivot(x, y); ok {
			out = compute(x[:pivot.xLast], y[:pivot.yLast], out)
			out = append(out, x[pivot.xLast])
			out = compute(x[pivot.xLast+1:], y[pivot.yLast+1:], out)
		}
	}

	return append(out, suffix...)
}

// findPivot builds the histogram for x and y and returns the record of the element with the
// lowest combined number of occurrences that appears in both. It returns false if x and y have
// no element in common.
func findPivot[T cmp.Ordered](x, y []T) (record, bool) {
	hist := make(map[T]*record, len(x))
	for i, e := range x {
		r, ok := hist[e]
		if !ok {
			r = &record{}
			hist[e] = r
		}
		r.xCount++
		r.xLast = i
	}
	for i, e := range y {
		r, ok := hist[e]
		if !ok {
			// Not in x, can't be a pivot.
			continue
		}
		r.yCount++
		r.yLast = i
	}

	var (
		best  *record
		key   T
		found bool
	)
	for e, r := range hist {
		if r.yCount == 0 {
			continue
		}
		n := r.xCount + r.yCount
		if !found || n < best.xCount+best.yCount || n == best.xCount+best.yCount && e < key {
			best, key, found = r, e, true
		}
	}
	if !found {
		return record{}, false
	}
	return *best, true
}

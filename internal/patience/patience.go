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

// Package patience implements the patience variant of a longest common subsequence search.
//
// Patience diff only trusts elements that appear exactly once in both inputs. The longest
// increasing sequence of these unique matches is used to split the inputs into sections which are
// then processed recursively. Sections without any unique match are handed to the histogram
// search.
package patience

import (
	"cmp"
	"slices"
	"sort"

	"github.com/histdiff/tokdiff/internal/histogram"
)

type pair struct{ s, t int }

// LCS returns an approximation of the longest common subsequence of x and y. The elements of the
// result appear in the same order in both x and y.
func LCS[T cmp.Ordered](x, y []T) []T {
	return compute(x, y, nil)
}

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
		anchors := anchors(x, y)
		if len(anchors) == 0 {
			out = append(out, histogram.LCS(x, y)...)
		} else {
			done := pair{0, 0}
			for _, a := range anchors {
				out = compute(x[done.s:a.s], y[done.t:a.t], out)
				out = append(out, x[a.s])
				done = pair{a.s + 1, a.t + 1}
			}
			out = compute(x[done.s:], y[done.t:], out)
		}
	}

	return append(out, suffix...)
}

// anchors returns the longest sequence of elements that appear exactly once in x and y and whose
// positions are increasing in both.
func anchors[T comparable](x, y []T) []pair {
	type count struct {
		xCount, xIdx int
		yCount, yIdx int
	}
	counts := make(map[T]*count, len(x))
	for i, e := range x {
		c, ok := counts[e]
		if !ok {
			c = &count{}
			counts[e] = c
		}
		c.xCount++
		c.xIdx = i
	}
	for i, e := range y {
		if c, ok := counts[e]; ok {
			c.yCount++
			c.yIdx = i
		}
	}

	// Unique matches in increasing order of their position in x.
	var cands []pair
	for i, e := range x {
		if c := counts[e]; c.xCount == 1 && c.yCount == 1 {
			cands = append(cands, pair{i, c.yIdx})
		}
	}
	if len(cands) == 0 {
		return nil
	}

	// Patience sorting: tails[k] is the index of the candidate with the smallest t that ends an
	// increasing sequence of length k+1, prev links every candidate to its predecessor.
	tails := make([]int, 0, len(cands))
	prev := make([]int, len(cands))
	for i, c := range cands {
		k := sort.Search(len(tails), func(k int) bool {
			return cands[tails[k]].t >= c.t
		})
		prev[i] = -1
		if k > 0 {
			prev[i] = tails[k-1]
		}
		if k == len(tails) {
			tails = append(tails, i)
		} else {
			tails[k] = i
		}
	}

	seq := make([]pair, 0, len(tails))
	for i := tails[len(tails)-1]; i >= 0; i = prev[i] {
		seq = append(seq, cands[i])
	}
	slices.Reverse(seq)
	return seq
}

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

// Package spans groups the unmatched regions between aligned positions into hunks.
package spans

import "iter"

// Span describes one hunk: the gap x[S0:S1], y[T0:T1] between two consecutive matches together
// with the number of context lines shown before and after it.
//
// Context lines are taken from x. The leading context line is x[S0-1] (matching y[T0-1]), the
// trailing context line is x[S1] (matching y[T1]).
type Span struct {
	S0, S1 int // Start and end of the gap in x.
	T0, T1 int // Start and end of the gap in y.

	Before, After int // Number of context lines, either 0 or 1.
}

// OldStart returns the 1-based line number in x of the first line of the hunk.
func (s Span) OldStart() int { return s.S0 - s.Before + 1 }

// NewStart returns the 1-based line number in y of the first line of the hunk.
func (s Span) NewStart() int { return s.T0 - s.Before + 1 }

// OldCount returns the number of lines of x covered by the hunk, including context.
func (s Span) OldCount() int { return s.S1 - s.S0 + s.Before + s.After }

// NewCount returns the number of lines of y covered by the hunk, including context.
func (s Span) NewCount() int { return s.T1 - s.T0 + s.Before + s.After }

// All iterates over the hunks of a diff between sequences of length n and m. xs and ys are the
// positions of matching elements in x and y, both strictly increasing and of equal length.
//
// Consecutive gaps are not merged, a match between two gaps is shown as context of both hunks.
func All(n, m int, xs, ys []int) iter.Seq[Span] {
	if len(xs) != len(ys) {
		panic("xs and ys must have the same length")
	}
	return func(yield func(Span) bool) {
		s, t := 0, 0 // start of the current gap
		for k := 0; k <= len(xs); k++ {
			// The end of the sequences acts as a sentinel match.
			s1, t1 := n, m
			if k < len(xs) {
				s1, t1 = xs[k], ys[k]
			}
			if s < s1 || t < t1 {
				span := Span{S0: s, S1: s1, T0: t, T1: t1}
				if k > 0 && s > 0 {
					span.Before = 1
				}
				if k < len(xs) && s1 < n {
					span.After = 1
				}
				if !yield(span) {
					return
				}
			}
			s, t = s1+1, t1+1
		}
	}
}

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

package patience

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/histdiff/tokdiff/internal/histogram"
)

func TestLCS(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want []string
	}{
		{
			name: "empty",
		},
		{
			name: "x-empty",
			y:    []string{"foo", "bar"},
		},
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: []string{"foo", "bar", "baz"},
		},
		{
			name: "disjoint",
			x:    strings.Split("abc", ""),
			y:    strings.Split("xyz", ""),
		},
		{
			name: "unique-anchor",
			x:    strings.Split("aba", ""),
			y:    strings.Split("baa", ""),
			want: []string{"b", "a"},
		},
		{
			name: "no-unique-falls-back-to-histogram",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: []string{"A", "C"},
		},
		{
			name: "moved-block",
			x:    []string{"func a() {", "}", "func b() {", "}"},
			y:    []string{"func b() {", "}", "func a() {", "}"},
			want: []string{"func b() {", "}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LCS(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("LCS(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

// The same input can produce different results with patience and histogram.
func TestLCSDiffersFromHistogram(t *testing.T) {
	x, y := strings.Split("aba", ""), strings.Split("baa", "")
	p, h := LCS(x, y), histogram.LCS(x, y)
	if cmp.Equal(p, h) {
		t.Errorf("patience and histogram agree on %v, %v: %v", x, y, p)
	}
}

func TestAnchors(t *testing.T) {
	x := []int{1, 2, 3, 4, 5, 9}
	y := []int{2, 1, 3, 5, 4, 9, 9}
	want := []pair{{1, 0}, {2, 2}, {4, 3}}
	got := anchors(x, y)
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(pair{})); diff != "" {
		t.Errorf("anchors(...) result is different [-want,+got]:\n%s", diff)
	}
}

func TestLCSProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := range 200 {
		x := randomSeq(rng, rng.IntN(40), 8)
		y := randomSeq(rng, rng.IntN(40), 8)
		got := LCS(x, y)
		if !isSubsequence(got, x) || !isSubsequence(got, y) {
			t.Fatalf("#%d: LCS(%v, %v) = %v is not a common subsequence", i, x, y, got)
		}
	}
}

func randomSeq(rng *rand.Rand, n, alphabet int) []uint32 {
	s := make([]uint32, n)
	for i := range s {
		s[i] = uint32(rng.IntN(alphabet))
	}
	return s
}

func isSubsequence[T comparable](sub, seq []T) bool {
	i := 0
	for _, e := range seq {
		if i < len(sub) && sub[i] == e {
			i++
		}
	}
	return i == len(sub)
}

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

	"github.com/histdiff/tokdiff/internal/align"
	"github.com/histdiff/tokdiff/internal/config"
	"github.com/histdiff/tokdiff/internal/histogram"
	"github.com/histdiff/tokdiff/internal/patience"
	"github.com/histdiff/tokdiff/internal/spans"
	"github.com/histdiff/tokdiff/tokenizer"
)

// ErrMisaligned is returned if the common tokens found by a diff algorithm can't be mapped back
// to the inputs. It indicates a bug in this package.
var ErrMisaligned = align.ErrMisaligned

// Op describes the role of a line in a hunk.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match  Op = iota // A context line, present in both texts
	Delete           // A line only present in the old text
	Insert           // A line only present in the new text
)

// Line is a single line of a hunk. Text is the decoded text of one token. It may end in a
// newline, see [WriteHunks] for how that is rendered.
type Line struct {
	Op   Op
	Text string
}

// Hunk describes a contiguous change together with its context.
//
// OldStart and NewStart are the 1-based positions of the first line of the hunk in the old and
// new token sequence, OldCount and NewCount the number of tokens of each sequence covered by the
// hunk, context included.
type Hunk struct {
	OldStart, OldCount int
	NewStart, NewCount int
	Lines              []Line
}

// Diff holds two tokenized texts.
type Diff struct {
	tok  tokenizer.Tokenizer
	x, y []tokenizer.ID
	cfg  config.Config
}

// New tokenizes oldText and newText with tok and returns a Diff for them.
//
// The Diff takes ownership of tok, it's used again to decode tokens when rendering hunks. The
// tokenizer must not be used elsewhere afterwards.
//
// The following options are supported: [OldLabel], [NewLabel]
func New(tok tokenizer.Tokenizer, oldText, newText string, opts ...Option) (*Diff, error) {
	cfg := config.FromOptions(opts)
	x, err := tok.Encode(oldText)
	if err != nil {
		return nil, fmt.Errorf("encoding old text: %w", err)
	}
	y, err := tok.Encode(newText)
	if err != nil {
		return nil, fmt.Errorf("encoding new text: %w", err)
	}
	return &Diff{tok: tok, x: x, y: y, cfg: cfg}, nil
}

// Tokens returns the token sequences of the old and new text. The returned slices must not be
// modified.
func (d *Diff) Tokens() (x, y []tokenizer.ID) {
	return d.x, d.y
}

// Identical returns true if both texts consist of the same tokens.
func (d *Diff) Identical() bool {
	return Identical(d.x, d.y)
}

// Identical returns true if x and y have the same length and the same tokens at every position.
func Identical(x, y []tokenizer.ID) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// LCS returns the tokens both texts have in common, in order, as found by the algorithm selected
// with f. The result is a common subsequence but not necessarily the longest one.
func (d *Diff) LCS(f Format) []tokenizer.ID {
	switch f {
	case Histogram:
		return histogram.LCS(d.x, d.y)
	case Patience:
		return patience.LCS(d.x, d.y)
	default:
		panic(fmt.Sprintf("unknown format: %v", f))
	}
}

// Hunks returns the changes between both texts. Every gap between two common tokens becomes a
// hunk of its own; hunks are never merged, so a single common token between two changes is shown
// as context of both.
//
// If both texts are identical, the output has length zero.
func (d *Diff) Hunks(f Format) ([]Hunk, error) {
	xs, ys, err := align.Positions(d.LCS(f), d.x, d.y)
	if err != nil {
		return nil, err
	}
	var out []Hunk
	for s := range spans.All(len(d.x), len(d.y), xs, ys) {
		h, err := d.hunk(s)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func (d *Diff) hunk(s spans.Span) (Hunk, error) {
	h := Hunk{
		OldStart: s.OldStart(),
		OldCount: s.OldCount(),
		NewStart: s.NewStart(),
		NewCount: s.NewCount(),
		Lines:    make([]Line, 0, s.S1-s.S0+s.T1-s.T0+s.Before+s.After),
	}
	add := func(op Op, id tokenizer.ID) error {
		text, err := d.tok.Decode([]tokenizer.ID{id})
		if err != nil {
			return fmt.Errorf("decoding token %d: %w", id, err)
		}
		h.Lines = append(h.Lines, Line{op, text})
		return nil
	}

	if s.Before > 0 {
		if err := add(Match, d.x[s.S0-1]); err != nil {
			return Hunk{}, err
		}
	}
	for _, id := range d.x[s.S0:s.S1] {
		if err := add(Delete, id); err != nil {
			return Hunk{}, err
		}
	}
	for _, id := range d.y[s.T0:s.T1] {
		if err := add(Insert, id); err != nil {
			return Hunk{}, err
		}
	}
	if s.After > 0 {
		if err := add(Match, d.x[s.S1]); err != nil {
			return Hunk{}, err
		}
	}
	return h, nil
}

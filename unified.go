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
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

// Unified returns the changes between both texts in unified format, using the algorithm selected
// with f.
//
// The output starts with a "---" and a "+++" header line, followed by the hunks. If both texts
// are identical, the output consists of the header lines only.
func (d *Diff) Unified(f Format) (string, error) {
	var b strings.Builder
	if err := d.WriteUnified(&b, f); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteUnified writes the changes between both texts to w in unified format. See [Diff.Unified].
func (d *Diff) WriteUnified(w io.Writer, f Format) error {
	hunks, err := d.Hunks(f)
	if err != nil {
		return err
	}
	return WriteHunks(w, d.cfg.OldLabel, d.cfg.NewLabel, hunks)
}

// WriteHunks writes hunks to w in unified format with the given header labels.
//
// Every line is terminated by a newline. Lines whose text already ends in a newline, as produced
// by [tokenizer.Line], don't get a second one. As a consequence, the tokens "a" and "a\n" render
// as the same line, the output doesn't tell them apart.
func WriteHunks(w io.Writer, oldLabel, newLabel string, hunks []Hunk) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "--- %s\n", oldLabel)
	fmt.Fprintf(b, "+++ %s\n", newLabel)
	for _, h := range hunks {
		fmt.Fprintf(b, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		for _, l := range h.Lines {
			switch l.Op {
			case Match:
				b.WriteString(prefixMatch)
			case Delete:
				b.WriteString(prefixDelete)
			case Insert:
				b.WriteString(prefixInsert)
			default:
				panic("never reached")
			}
			b.WriteString(l.Text)
			if !strings.HasSuffix(l.Text, "\n") {
				b.WriteByte('\n')
			}
		}
	}
	return b.Flush()
}

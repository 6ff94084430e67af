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

package tokenizer

import (
	"fmt"
	"maps"
	"slices"
)

// Merge is a BPE merge rule: adjacent tokens Left and Right are replaced with Left+Right.
type Merge struct {
	Left, Right string
}

// BPE is a byte pair encoding tokenizer. Text is split into words like [Word] does, every word
// is split into characters and then the merge rules are applied in order of their priority.
//
// Without any merge rules, BPE behaves like [Character] on words.
type BPE struct {
	vocab
	parser ParserMode
	merges []Merge
	ranks  map[Merge]int
}

// NewBPE returns a new BPE tokenizer without merge rules and an empty vocabulary.
func NewBPE(parser ParserMode) *BPE {
	return &BPE{
		vocab:  newVocab(ModeBPE),
		parser: parser,
		ranks:  make(map[Merge]int),
	}
}

// Merges returns the merge rules in order of priority.
func (b *BPE) Merges() []Merge {
	return slices.Clone(b.merges)
}

// AddMerges appends merge rules with a lower priority than the existing ones. Rules that already
// exist are ignored.
func (b *BPE) AddMerges(merges []Merge) {
	for _, m := range merges {
		if _, ok := b.ranks[m]; ok {
			continue
		}
		b.ranks[m] = len(b.merges)
		b.merges = append(b.merges, m)
		b.intern(m.Left)
		b.intern(m.Right)
		b.intern(m.Left + m.Right)
	}
}

// Train learns merge rules from corpus until the vocabulary has vocabSize entries or no pair of
// adjacent tokens occurs at least minFrequency times.
//
// Pairs are ranked by frequency. Ties are broken by the lexical order of the pair, which makes
// training deterministic.
func (b *BPE) Train(corpus []string, vocabSize, minFrequency int) error {
	if vocabSize <= 0 {
		return fmt.Errorf("invalid vocabulary size %d", vocabSize)
	}
	minFrequency = max(1, minFrequency)

	freq := make(map[string]int)
	for _, text := range corpus {
		for _, w := range splitWords(text, b.parser) {
			freq[w]++
		}
	}

	type word struct {
		symbols []string
		count   int
	}
	words := make([]word, 0, len(freq))
	for _, w := range slices.Sorted(maps.Keys(freq)) {
		symbols := b.apply(splitChars(w, b.parser))
		for _, s := range symbols {
			b.intern(s)
		}
		words = append(words, word{symbols, freq[w]})
	}

	for len(b.tokens) < vocabSize {
		pairs := make(map[Merge]int)
		for _, w := range words {
			for i := 0; i+1 < len(w.symbols); i++ {
				pairs[Merge{w.symbols[i], w.symbols[i+1]}] += w.count
			}
		}
		best, n := Merge{}, 0
		for m, c := range pairs {
			if c > n || c == n && less(m, best) {
				best, n = m, c
			}
		}
		if n < minFrequency {
			break
		}
		b.AddMerges([]Merge{best})
		for i := range words {
			words[i].symbols = merge(words[i].symbols, best)
		}
	}
	return nil
}

// Encode splits text into words and applies the learned merges to the characters of each word.
func (b *BPE) Encode(text string) ([]ID, error) {
	var ids []ID
	for _, w := range splitWords(text, b.parser) {
		for _, s := range b.apply(splitChars(w, b.parser)) {
			ids = append(ids, b.intern(s))
		}
	}
	return ids, nil
}

// Save writes the vocabulary and the merge rules to the file at path.
func (b *BPE) Save(path string) error {
	merges := make([][2][]byte, len(b.merges))
	for i, m := range b.merges {
		merges[i] = [2][]byte{[]byte(m.Left), []byte(m.Right)}
	}
	return b.save(path, merges)
}

// Load replaces the vocabulary and the merge rules with the ones stored in the file at path.
func (b *BPE) Load(path string) error {
	doc, err := b.load(path)
	if err != nil {
		return err
	}
	b.merges = b.merges[:0]
	b.ranks = make(map[Merge]int, len(doc.Merges))
	for _, m := range doc.Merges {
		b.AddMerges([]Merge{{string(m[0]), string(m[1])}})
	}
	return nil
}

// apply repeatedly merges the adjacent pair with the highest priority until no rule applies.
func (b *BPE) apply(symbols []string) []string {
	for len(symbols) > 1 {
		rank := -1
		for i := 0; i+1 < len(symbols); i++ {
			if r, ok := b.ranks[Merge{symbols[i], symbols[i+1]}]; ok && (rank < 0 || r < rank) {
				rank = r
			}
		}
		if rank < 0 {
			break
		}
		symbols = merge(symbols, b.merges[rank])
	}
	return symbols
}

// merge replaces all non-overlapping occurrences of m in symbols, scanning left to right.
func merge(symbols []string, m Merge) []string {
	out := symbols[:0:0]
	for i := 0; i < len(symbols); i++ {
		if i+1 < len(symbols) && symbols[i] == m.Left && symbols[i+1] == m.Right {
			out = append(out, m.Left+m.Right)
			i++
			continue
		}
		out = append(out, symbols[i])
	}
	return out
}

func less(a, b Merge) bool {
	if a.Left != b.Left {
		return a.Left < b.Left
	}
	return a.Right < b.Right
}

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
	"strings"
	"unicode"
	"unicode/utf8"
)

// Word splits text into words. Every whitespace character is a token of its own, everything in
// between is a word. Punctuation stays attached to the word it's next to.
type Word struct {
	vocab
	parser ParserMode
}

// NewWord returns a new word tokenizer with an empty vocabulary.
func NewWord(parser ParserMode) *Word {
	return &Word{vocab: newVocab(ModeWord), parser: parser}
}

// Encode splits text into words and whitespace characters and returns their IDs.
func (w *Word) Encode(text string) ([]ID, error) {
	return w.encode(splitWords(text, w.parser)), nil
}

// Whitespace splits text into alternating runs of whitespace and non-whitespace characters.
type Whitespace struct {
	vocab
	parser ParserMode
}

// NewWhitespace returns a new whitespace tokenizer with an empty vocabulary.
func NewWhitespace(parser ParserMode) *Whitespace {
	return &Whitespace{vocab: newVocab(ModeWhitespace), parser: parser}
}

// Encode splits text into whitespace and non-whitespace runs and returns their IDs.
func (w *Whitespace) Encode(text string) ([]ID, error) {
	return w.encode(splitRuns(text, w.parser)), nil
}

// Line splits text into lines. Every line except possibly the last one ends in "\n".
type Line struct {
	vocab
}

// NewLine returns a new line tokenizer with an empty vocabulary.
func NewLine() *Line {
	return &Line{vocab: newVocab(ModeLine)}
}

// Encode splits text into lines and returns their IDs.
func (l *Line) Encode(text string) ([]ID, error) {
	return l.encode(splitLines(text)), nil
}

func splitWords(text string, parser ParserMode) []string {
	var out []string
	start := -1 // start of the current word
	for i := 0; i < len(text); {
		size, space := next(text[i:], parser)
		switch {
		case space:
			if start >= 0 {
				out = append(out, text[start:i])
				start = -1
			}
			out = append(out, text[i:i+size])
		case start < 0:
			start = i
		}
		i += size
	}
	if start >= 0 {
		out = append(out, text[start:])
	}
	return out
}

func splitRuns(text string, parser ParserMode) []string {
	var out []string
	start, inSpace := 0, false
	for i := 0; i < len(text); {
		size, space := next(text[i:], parser)
		if i > start && space != inSpace {
			out = append(out, text[start:i])
			start = i
		}
		inSpace = space
		i += size
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	// SplitAfter adds an empty element after the last '\n', it doesn't count as a line.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// next returns the size of the first character in s and whether it's whitespace.
func next(s string, parser ParserMode) (size int, space bool) {
	if parser == Bytes {
		switch s[0] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return 1, true
		default:
			return 1, false
		}
	}
	r, size := utf8.DecodeRuneInString(s)
	return size, unicode.IsSpace(r)
}

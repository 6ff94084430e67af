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

import "github.com/clipperhouse/uax29/v2/graphemes"

// Character splits text into single characters. In UTF8 mode, a character is a grapheme cluster
// (e.g., a letter with combining marks or "\r\n"), in Bytes mode it's a single byte.
type Character struct {
	vocab
	parser ParserMode
}

// NewCharacter returns a new character tokenizer with an empty vocabulary.
func NewCharacter(parser ParserMode) *Character {
	return &Character{vocab: newVocab(ModeCharacter), parser: parser}
}

// Encode splits text into characters and returns their IDs.
func (c *Character) Encode(text string) ([]ID, error) {
	return c.encode(splitChars(text, c.parser)), nil
}

func splitChars(text string, parser ParserMode) []string {
	if text == "" {
		return nil
	}
	if parser == Bytes {
		out := make([]string, len(text))
		for i := range len(text) {
			out[i] = text[i : i+1]
		}
		return out
	}
	var out []string
	iter := graphemes.FromString(text)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

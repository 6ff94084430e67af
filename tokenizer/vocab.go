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
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"strings"
)

// vocab is the growing vocabulary shared by all tokenizers that map substrings to IDs. IDs are
// dense and assigned in order of first appearance.
type vocab struct {
	mode   Mode
	ids    map[string]ID
	tokens []string
}

func newVocab(mode Mode) vocab {
	return vocab{mode: mode, ids: make(map[string]ID)}
}

// intern returns the ID of tok, adding it to the vocabulary if necessary.
func (v *vocab) intern(tok string) ID {
	if id, ok := v.ids[tok]; ok {
		return id
	}
	id := ID(len(v.tokens))
	v.ids[tok] = id
	v.tokens = append(v.tokens, tok)
	return id
}

func (v *vocab) encode(segments []string) []ID {
	if len(segments) == 0 {
		return nil
	}
	ids := make([]ID, len(segments))
	for i, s := range segments {
		ids[i] = v.intern(s)
	}
	return ids
}

// Decode concatenates the tokens identified by ids.
func (v *vocab) Decode(ids []ID) (string, error) {
	var b strings.Builder
	for _, id := range ids {
		if int(id) >= len(v.tokens) {
			return "", fmt.Errorf("%w: %d", ErrUnknownToken, id)
		}
		b.WriteString(v.tokens[id])
	}
	return b.String(), nil
}

// Vocabulary returns a copy of the mapping from token text to ID.
func (v *vocab) Vocabulary() map[string]ID {
	return maps.Clone(v.ids)
}

// Save writes the vocabulary to the file at path.
func (v *vocab) Save(path string) error {
	return v.save(path, nil)
}

// Load replaces the vocabulary with the one stored in the file at path.
func (v *vocab) Load(path string) error {
	_, err := v.load(path)
	return err
}

// document is the on-disk representation of a vocabulary. The ID of a token is its index in
// Tokens.
//
// Tokens and merges are stored as raw bytes, base64 encoded by encoding/json. Tokens created in
// Bytes mode are not necessarily valid UTF-8 and would not survive a JSON string.
type document struct {
	Mode   string      `json:"mode"`
	Tokens [][]byte    `json:"tokens"`
	Merges [][2][]byte `json:"merges,omitempty"`
}

func (v *vocab) save(path string, merges [][2][]byte) error {
	doc := document{
		Mode:   v.mode.String(),
		Tokens: make([][]byte, len(v.tokens)),
		Merges: merges,
	}
	for i, tok := range v.tokens {
		doc.Tokens[i] = []byte(tok)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding vocabulary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("saving vocabulary: %w", err)
	}
	return nil
}

// load replaces the vocabulary with the one stored at path and returns the stored document. The
// vocabulary is left unchanged if loading fails.
func (v *vocab) load(path string) (document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document{}, fmt.Errorf("loading vocabulary: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("decoding vocabulary %s: %w", path, err)
	}
	if doc.Mode != v.mode.String() {
		return document{}, fmt.Errorf("%w: %s contains a %q vocabulary, want %q", ErrVocabularyMismatch, path, doc.Mode, v.mode)
	}
	ids := make(map[string]ID, len(doc.Tokens))
	tokens := make([]string, len(doc.Tokens))
	for i, b := range doc.Tokens {
		tok := string(b)
		if _, dup := ids[tok]; dup {
			return document{}, fmt.Errorf("decoding vocabulary %s: duplicate token %q", path, tok)
		}
		ids[tok] = ID(i)
		tokens[i] = tok
	}
	v.ids, v.tokens = ids, tokens
	return doc, nil
}

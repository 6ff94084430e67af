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

// Package tokenizer turns text into sequences of token IDs and back.
//
// All tokenizers in this package are lossless: decoding the IDs returned by Encode reproduces the
// input exactly, and decoding a single ID reproduces the exact substring that token was created
// from. Token IDs are only meaningful within one tokenizer instance.
//
// Tokenizers assign IDs to new tokens while encoding. They are not safe for concurrent use.
package tokenizer

import (
	"errors"
	"fmt"
)

// ID identifies a token within the vocabulary of a tokenizer.
type ID uint32

// Tokenizer converts text to token IDs and back.
type Tokenizer interface {
	// Encode splits text into tokens and returns their IDs.
	Encode(text string) ([]ID, error)

	// Decode returns the text represented by ids.
	Decode(ids []ID) (string, error)
}

// Vocabulary is a Tokenizer whose vocabulary can be inspected and persisted.
type Vocabulary interface {
	Tokenizer

	// Vocabulary returns a copy of the mapping from token text to ID.
	Vocabulary() map[string]ID

	// Save writes the vocabulary to the file at path.
	Save(path string) error

	// Load replaces the vocabulary with the one stored in the file at path.
	Load(path string) error
}

var (
	// ErrUnknownToken is returned when decoding an ID that is not part of the vocabulary.
	ErrUnknownToken = errors.New("unknown token")

	// ErrVocabularyMismatch is returned when loading a vocabulary that was saved by a different
	// kind of tokenizer.
	ErrVocabularyMismatch = errors.New("vocabulary mismatch")
)

// Mode selects a tokenizer implementation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Mode -linecomment
type Mode int

const (
	ModeWord       Mode = iota // word
	ModeWhitespace             // whitespace
	ModeCharacter              // character
	ModeLine                   // line
	ModeBPE                    // bpe
	ModeTiktoken               // tiktoken
)

// Modes lists all tokenizer modes.
var Modes = []Mode{ModeWord, ModeWhitespace, ModeCharacter, ModeLine, ModeBPE, ModeTiktoken}

// ParseMode returns the mode with the given name.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown tokenizer mode %q", name)
}

// ParserMode describes what a tokenizer considers a single character.
type ParserMode int

const (
	// UTF8 treats text as UTF-8, a character is a grapheme cluster.
	UTF8 ParserMode = iota

	// Bytes treats every byte as a character.
	Bytes
)

// New creates a new, empty tokenizer.
//
// The Tiktoken tokenizer ignores parser and uses the default encoding.
func New(mode Mode, parser ParserMode) (Tokenizer, error) {
	switch mode {
	case ModeWord:
		return NewWord(parser), nil
	case ModeWhitespace:
		return NewWhitespace(parser), nil
	case ModeCharacter:
		return NewCharacter(parser), nil
	case ModeLine:
		return NewLine(), nil
	case ModeBPE:
		return NewBPE(parser), nil
	case ModeTiktoken:
		return NewTiktoken(DefaultEncoding)
	default:
		return nil, fmt.Errorf("unknown tokenizer mode %v", mode)
	}
}

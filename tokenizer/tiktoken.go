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

	tiktoken "github.com/tiktoken-go/tokenizer"
)

// DefaultEncoding is the encoding used by [New] for [ModeTiktoken].
const DefaultEncoding = string(tiktoken.O200kBase)

// Tiktoken is a pretrained BPE tokenizer using the encodings of OpenAI models. Its vocabulary is
// fixed, tokens can't be added and the vocabulary can't be saved or loaded.
//
// Decoding a single token returns the raw bytes of that token, which is not necessarily valid
// UTF-8.
type Tiktoken struct {
	codec tiktoken.Codec
}

// NewTiktoken returns a tokenizer for the named encoding (e.g., "cl100k_base" or "o200k_base").
func NewTiktoken(encoding string) (*Tiktoken, error) {
	codec, err := tiktoken.Get(tiktoken.Encoding(encoding))
	if err != nil {
		return nil, fmt.Errorf("loading tiktoken encoding %q: %w", encoding, err)
	}
	return &Tiktoken{codec: codec}, nil
}

func (t *Tiktoken) Encode(text string) ([]ID, error) {
	raw, _, err := t.codec.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("encoding with %s: %w", t.codec.GetName(), err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]ID, len(raw))
	for i, id := range raw {
		ids[i] = ID(id)
	}
	return ids, nil
}

func (t *Tiktoken) Decode(ids []ID) (string, error) {
	raw := make([]uint, len(ids))
	for i, id := range ids {
		raw[i] = uint(id)
	}
	text, err := t.codec.Decode(raw)
	if err != nil {
		return "", fmt.Errorf("decoding with %s: %w", t.codec.GetName(), err)
	}
	return text, nil
}

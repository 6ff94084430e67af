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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, tok Tokenizer, ids []ID) []string {
	t.Helper()
	out := make([]string, len(ids))
	for i, id := range ids {
		s, err := tok.Decode([]ID{id})
		require.NoError(t, err)
		out[i] = s
	}
	return out
}

func TestBPEUntrained(t *testing.T) {
	tok := NewBPE(UTF8)
	ids, err := tok.Encode("ab c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", " ", "c"}, decodeAll(t, tok, ids))
}

func TestBPEAddMerges(t *testing.T) {
	tok := NewBPE(UTF8)
	tok.AddMerges([]Merge{{"l", "o"}, {"lo", "w"}, {"e", "r"}})
	tok.AddMerges([]Merge{{"l", "o"}}) // duplicate

	ids, err := tok.Encode("lower low")
	require.NoError(t, err)
	assert.Equal(t, []string{"low", "er", " ", "low"}, decodeAll(t, tok, ids))
	assert.Equal(t, []Merge{{"l", "o"}, {"lo", "w"}, {"e", "r"}}, tok.Merges())
}

func TestBPETrain(t *testing.T) {
	tok := NewBPE(UTF8)
	corpus := []string{"low low low lower lowest", "newer newest"}
	require.NoError(t, tok.Train(corpus, 100, 2))

	merges := tok.Merges()
	require.NotEmpty(t, merges)
	// "lo" occurs 5 times and "ow" 5 times, the lexically smaller pair wins the tie.
	assert.Equal(t, Merge{"l", "o"}, merges[0])
	assert.Contains(t, tok.Vocabulary(), "low")

	ids, err := tok.Encode("low")
	require.NoError(t, err)
	assert.Equal(t, []string{"low"}, decodeAll(t, tok, ids))
}

func TestBPETrainDeterministic(t *testing.T) {
	corpus := []string{"the cat sat on the mat", "the bat ate the rat"}
	a, b := NewBPE(UTF8), NewBPE(UTF8)
	require.NoError(t, a.Train(corpus, 40, 2))
	require.NoError(t, b.Train(corpus, 40, 2))
	assert.Equal(t, a.Merges(), b.Merges())
	assert.Equal(t, a.Vocabulary(), b.Vocabulary())
}

func TestBPETrainVocabSize(t *testing.T) {
	tok := NewBPE(UTF8)
	require.NoError(t, tok.Train([]string{"aaaa bbbb aaaa bbbb"}, 4, 1))
	// Base vocabulary is "a", "b", " ", one merge fills it up.
	assert.Len(t, tok.Vocabulary(), 4)
	assert.Len(t, tok.Merges(), 1)

	assert.Error(t, NewBPE(UTF8).Train(nil, 0, 1))
}

func TestBPESaveLoad(t *testing.T) {
	const corpus = "hello hello help helmet caf\u00e9 caf\u00e9 cr\u00e8me cr\u00e8me"
	const text = "hello helmet caf\u00e9 cr\u00e8me"
	parsers := []struct {
		name   string
		parser ParserMode
	}{
		{"utf8", UTF8},
		{"bytes", Bytes},
	}
	for _, tt := range parsers {
		parser := tt.parser
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bpe.json")

			src := NewBPE(parser)
			require.NoError(t, src.Train([]string{corpus}, 60, 2))
			require.NoError(t, src.Save(path))

			dst := NewBPE(parser)
			require.NoError(t, dst.Load(path))
			assert.Equal(t, src.Merges(), dst.Merges())
			assert.Equal(t, src.Vocabulary(), dst.Vocabulary())

			want, err := src.Encode(text)
			require.NoError(t, err)
			got, err := dst.Encode(text)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			decoded, err := dst.Decode(got)
			require.NoError(t, err)
			assert.Equal(t, text, decoded)
		})
	}

	path := filepath.Join(t.TempDir(), "bpe.json")
	require.NoError(t, NewBPE(UTF8).Save(path))
	err := NewWord(UTF8).Load(path)
	assert.ErrorIs(t, err, ErrVocabularyMismatch)
}

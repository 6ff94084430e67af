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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiktoken(t *testing.T) {
	tok, err := NewTiktoken("cl100k_base")
	require.NoError(t, err)

	text := "hello world, hello tokens\n"
	ids, err := tok.Encode(text)
	require.NoError(t, err)
	require.NotEmpty(t, ids)

	got, err := tok.Decode(ids)
	require.NoError(t, err)
	assert.Equal(t, text, got)

	// Equal words map to equal IDs.
	a, err := tok.Encode(" hello")
	require.NoError(t, err)
	b, err := tok.Encode(" hello")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	empty, err := tok.Encode("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTiktokenUnknownEncoding(t *testing.T) {
	_, err := NewTiktoken("no_such_encoding")
	assert.Error(t, err)
}

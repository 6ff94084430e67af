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

// Package tokdiff compares two texts token by token and renders the differences as a unified
// diff.
//
// Both texts are split into tokens by a [tokenizer.Tokenizer]. The tokens are compared with a
// histogram diff, which finds a common subsequence by recursively splitting the inputs at the
// least frequent token they have in common, or with a patience diff, which splits the inputs at
// tokens that are unique in both. Neither algorithm guarantees a minimal diff. In exchange, they
// run in close to linear time for typical inputs and tend to produce diffs that are easy to read.
//
// Every token is shown on a line of its own. With [tokenizer.Line], the output is a line based
// unified diff. Every hunk shows exactly one line of context before and after the change, if
// such a line exists.
package tokdiff

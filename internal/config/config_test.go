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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/histdiff/tokdiff"
	"github.com/histdiff/tokdiff/internal/config"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "old-label",
			opts: []config.Option{
				tokdiff.OldLabel("a/file.txt"),
			},
			want: config.Config{
				OldLabel: "a/file.txt",
				NewLabel: config.Default.NewLabel,
			},
		},
		{
			name: "new-label",
			opts: []config.Option{
				tokdiff.NewLabel("b/file.txt"),
			},
			want: config.Config{
				OldLabel: config.Default.OldLabel,
				NewLabel: "b/file.txt",
			},
		},
		{
			name: "label-override",
			opts: []config.Option{
				tokdiff.OldLabel("first"),
				tokdiff.NewLabel("b"),
				tokdiff.OldLabel("a"),
			},
			want: config.Config{
				OldLabel: "a",
				NewLabel: "b",
			},
		},
		{
			name: "empty-label-keeps-default",
			opts: []config.Option{
				tokdiff.OldLabel(""),
			},
			want: config.Default,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

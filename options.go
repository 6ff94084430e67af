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

package tokdiff

import "github.com/histdiff/tokdiff/internal/config"

// Option configures the behavior of a [Diff].
type Option = config.Option

// OldLabel sets the name of the old text printed in the "---" header. The default is "old".
// An empty name keeps the default.
func OldLabel(name string) Option {
	return func(cfg *config.Config) {
		if name != "" {
			cfg.OldLabel = name
		}
	}
}

// NewLabel sets the name of the new text printed in the "+++" header. The default is "new".
// An empty name keeps the default.
func NewLabel(name string) Option {
	return func(cfg *config.Config) {
		if name != "" {
			cfg.NewLabel = name
		}
	}
}

/*
Copyright 2026 The Devserve Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package testutil

import (
	"os"
	"strings"
)

// SetEnvs sets each variable for the duration of the test.
func (t *T) SetEnvs(envs map[string]string) {
	for key, value := range envs {
		t.Setenv(key, value)
	}
}

// UnsetEnvsWithPrefix removes every variable starting with prefix and restores
// them when the test ends, so that the caller's shell can't leak into a test.
func (t *T) UnsetEnvsWithPrefix(prefix string) {
	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("cannot unset environment variable: %v", err)
		}
		t.Cleanup(func() {
			os.Setenv(key, value)
		})
	}
}

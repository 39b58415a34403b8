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

package fileserver

import (
	"errors"
	"testing"

	"github.com/devserve/devserve/testutil"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		description string
		urlPath     string
		expected    string
		shouldErr   bool
	}{
		{
			description: "root maps to index",
			urlPath:     "/",
			expected:    "/index.html",
		},
		{
			description: "file",
			urlPath:     "/app.js",
			expected:    "/app.js",
		},
		{
			description: "nested file",
			urlPath:     "/static/css/site.css",
			expected:    "/static/css/site.css",
		},
		{
			description: "directory keeps no trailing slash",
			urlPath:     "/static/",
			expected:    "/static",
		},
		{
			description: "dot segments",
			urlPath:     "/./static/./app.js",
			expected:    "/static/app.js",
		},
		{
			description: "dot dot inside the root",
			urlPath:     "/static/../app.js",
			expected:    "/app.js",
		},
		{
			description: "repeated slashes",
			urlPath:     "//static///app.js",
			expected:    "/static/app.js",
		},
		{
			description: "only dot",
			urlPath:     "/.",
			expected:    "/",
		},
		{
			description: "escape from root",
			urlPath:     "/../../etc/passwd",
			shouldErr:   true,
		},
		{
			description: "escape after descending",
			urlPath:     "/static/../../etc/passwd",
			shouldErr:   true,
		},
		{
			description: "escape to parent",
			urlPath:     "/..",
			shouldErr:   true,
		},
		{
			description: "dots in file names are fine",
			urlPath:     "/..hidden/file..txt",
			expected:    "/..hidden/file..txt",
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			resolved, err := Resolve(test.urlPath, "index.html")

			t.CheckErrorAndDeepEqual(test.shouldErr, err, test.expected, resolved)
			if test.shouldErr {
				t.CheckTrue(errors.Is(err, ErrOutsideRoot))
			}
		})
	}
}

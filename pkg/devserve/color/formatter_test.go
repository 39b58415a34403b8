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

package color

import (
	"bytes"
	"io"
	"testing"

	"github.com/devserve/devserve/testutil"
)

func TestFprintln(t *testing.T) {
	tests := []struct {
		description string
		terminal    bool
		expected    string
	}{
		{
			description: "terminal",
			terminal:    true,
			expected:    "\x1b[32mServer stopped.\x1b[0m\n",
		},
		{
			description: "not a terminal",
			expected:    "Server stopped.\n",
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			t.Override(&IsTerminal, func(io.Writer) bool { return test.terminal })

			var out bytes.Buffer
			Fprintln(&out, Green, "Server stopped.")

			t.CheckDeepEqual(test.expected, out.String())
		})
	}
}

func TestFprintf(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		t.Override(&IsTerminal, func(io.Writer) bool { return true })

		var out bytes.Buffer
		Fprintf(&out, Default, "port %d\n", 9500)

		t.CheckDeepEqual("port 9500\n", out.String())
	})
}

func TestIsTerminalBuffer(t *testing.T) {
	testutil.CheckDeepEqual(t, false, isTerminal(&bytes.Buffer{}))
}

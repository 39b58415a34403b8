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
	"path/filepath"
)

// TempDir offers actions on a temp directory.
type TempDir struct {
	t    *T
	root string
}

// NewTempDir creates a temporary directory that is removed when the test ends.
func (t *T) NewTempDir() *TempDir {
	root := t.TempDir()

	// On macOS, the temp dir is behind a symlink.
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	return &TempDir{t: t, root: root}
}

// Root returns the temp directory.
func (h *TempDir) Root() string {
	return h.root
}

// Path returns the path to a file in the temp directory.
func (h *TempDir) Path(file string) string {
	return filepath.Join(h.root, filepath.FromSlash(file))
}

// Mkdir makes a sub-directory in the temp directory.
func (h *TempDir) Mkdir(dir string) *TempDir {
	h.failIfErr(os.MkdirAll(h.Path(dir), os.ModePerm))
	return h
}

// Write write content to a file in the temp directory.
func (h *TempDir) Write(file, content string) *TempDir {
	return h.WriteMode(file, content, 0o644)
}

// WriteMode writes content to a file with the given permissions.
func (h *TempDir) WriteMode(file, content string, mode os.FileMode) *TempDir {
	h.failIfErr(os.MkdirAll(filepath.Dir(h.Path(file)), os.ModePerm))
	h.failIfErr(os.WriteFile(h.Path(file), []byte(content), mode))
	h.failIfErr(os.Chmod(h.Path(file), mode))
	return h
}

// Touch creates a list of empty files.
func (h *TempDir) Touch(files ...string) *TempDir {
	for _, file := range files {
		h.Write(file, "")
	}
	return h
}

// Chdir changes the current directory to the temp directory.
func (h *TempDir) Chdir() *TempDir {
	pwd, err := os.Getwd()
	h.failIfErr(err)
	h.failIfErr(os.Chdir(h.root))

	h.t.Cleanup(func() { os.Chdir(pwd) })
	return h
}

func (h *TempDir) failIfErr(err error) {
	if err != nil {
		h.t.Fatal(err)
	}
}

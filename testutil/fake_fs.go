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

	"github.com/spf13/afero"
)

// NewFakeFs returns an in-memory filesystem holding the given files,
// keyed by slash-separated absolute paths.
func NewFakeFs(files map[string]string) afero.Fs {
	fs := afero.NewMemMapFs()
	for name, content := range files {
		path := filepath.FromSlash(name)
		if err := fs.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			panic(err)
		}
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			panic(err)
		}
	}
	return fs
}

// FailingFs wraps a filesystem and fails the listed operations.
type FailingFs struct {
	afero.Fs

	// OpenErrs maps a path to the error returned when it is opened.
	OpenErrs map[string]error
	// ReadErrs maps a path to a file whose reads always fail.
	ReadErrs map[string]error
}

func (f *FailingFs) Open(name string) (afero.File, error) {
	if err, found := f.OpenErrs[filepath.ToSlash(name)]; found {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}

	file, err := f.Fs.Open(name)
	if err != nil {
		return nil, err
	}

	if err, found := f.ReadErrs[filepath.ToSlash(name)]; found {
		return &failingFile{File: file, err: err}, nil
	}
	return file, nil
}

func (f *FailingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag == os.O_RDONLY {
		return f.Open(name)
	}
	return f.Fs.OpenFile(name, flag, perm)
}

type failingFile struct {
	afero.File
	err error
}

func (f *failingFile) Read([]byte) (int, error) {
	return 0, f.err
}

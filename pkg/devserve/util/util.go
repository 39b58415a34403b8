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

package util

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Fs is the underlying filesystem files are served from. OS FS by default
var Fs = afero.NewOsFs()

// AbsPath expands a leading `~` and makes the path absolute.
func AbsPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.Wrapf(err, "expanding %q", path)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, "resolving absolute path of %q", expanded)
	}
	return abs, nil
}

// IsDir reports whether path names an existing directory on Fs.
func IsDir(path string) bool {
	info, err := Fs.Stat(path)
	return err == nil && info.IsDir()
}

// LoadEnvFile reads KEY=VALUE pairs from filename into the process environment.
// Variables that are already set are left untouched.
func LoadEnvFile(filename string) error {
	if filename == "" {
		return nil
	}
	f, err := Fs.Open(filename)
	if err != nil {
		return errors.Wrap(err, "opening env file")
	}
	defer f.Close()

	envs, err := godotenv.Parse(f)
	if err != nil {
		return errors.Wrapf(err, "parsing env file %q", filename)
	}
	for key, value := range envs {
		if _, found := os.LookupEnv(key); found {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return errors.Wrapf(err, "setting %s", key)
		}
	}
	return nil
}

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
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrOutsideRoot is returned for paths whose `..` segments climb above the root directory.
var ErrOutsideRoot = errors.New("path escapes the root directory")

// Resolve maps a decoded URL path to a clean, slash-separated path relative
// to the root directory. `/` maps to the index file.
func Resolve(urlPath, indexFile string) (string, error) {
	if urlPath == "/" {
		urlPath = "/" + indexFile
	}

	var segments []string
	for _, segment := range strings.Split(urlPath, "/") {
		switch segment {
		case "", ".":
		case "..":
			if len(segments) == 0 {
				return "", ErrOutsideRoot
			}
			segments = segments[:len(segments)-1]
		default:
			// On Windows a segment like `..\..` would be split by the filesystem.
			if os.PathSeparator != '/' && strings.ContainsRune(segment, os.PathSeparator) {
				return "", ErrOutsideRoot
			}
			segments = append(segments, segment)
		}
	}

	return "/" + strings.Join(segments, "/"), nil
}

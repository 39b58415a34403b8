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

package version

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/blang/semver"
	"github.com/pkg/errors"

	"github.com/devserve/devserve/pkg/devserve/output/log"
)

const devVersion = "v0.0.0-dev"

var version, gitCommit, buildDate string
var platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)

type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Compiler  string
	Platform  string
}

// Get returns the version and buildtime information about the binary.
// The values are injected at build time with -ldflags. A semver version is
// normalized to its `v` prefixed form.
func Get() *Info {
	return &Info{
		Version:   normalize(version),
		GitCommit: gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		Platform:  platform,
	}
}

// ParseVersion parses a version string, with or without a leading "v".
func ParseVersion(version string) (semver.Version, error) {
	v, err := semver.Parse(strings.TrimPrefix(strings.TrimSpace(version), "v"))
	if err != nil {
		return semver.Version{}, errors.Wrap(err, "parsing semver")
	}
	return v, nil
}

func normalize(v string) string {
	if v == "" {
		return devVersion
	}

	parsed, err := ParseVersion(v)
	if err != nil {
		log.Entry(context.TODO()).Debugf("Version %q is not semver: %v", v, err)
		return v
	}
	return "v" + parsed.String()
}

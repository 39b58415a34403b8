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

package constants

import (
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultLogLevel is the default global verbosity
	DefaultLogLevel = logrus.WarnLevel

	// DefaultPort is the TCP port the server listens on.
	DefaultPort = 9500

	// DefaultAddress binds all interfaces.
	DefaultAddress = "0.0.0.0"

	// DefaultRootDirectory is the directory files are served from.
	DefaultRootDirectory = "/home/user/webapp"

	// DefaultIndexFile is served for `/` and for directory paths.
	DefaultIndexFile = "index.html"

	// DefaultShutdownTimeout bounds how long in-flight requests may drain.
	DefaultShutdownTimeout = 5 * time.Second

	DefaultBindRetries = 0

	DefaultConfigDir  = ".devserve"
	DefaultConfigFile = "config.yaml"

	// EnvPrefix prefixes the environment variables mirroring command line flags.
	EnvPrefix = "DEVSERVE_"

	// DefaultContentType is used when the file extension is unknown.
	DefaultContentType = "application/octet-stream"
)

// NoCacheHeaders are set on every response.
var NoCacheHeaders = []struct {
	Name  string
	Value string
}{
	{Name: "Cache-Control", Value: "no-cache, no-store, must-revalidate"},
	{Name: "Pragma", Value: "no-cache"},
	{Name: "Expires", Value: "0"},
}

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

package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/devserve/devserve/pkg/devserve/constants"
	"github.com/devserve/devserve/pkg/devserve/util"
)

// ServeOptions configure a server. They are set once at startup from defaults,
// the config file, the environment and the command line, and are passed by
// value afterwards.
type ServeOptions struct {
	Port            int
	Address         string
	RootDirectory   string
	IndexFile       string
	ShutdownTimeout time.Duration
	BindRetries     int
	ConfigFile      string
	EnvFile         string
}

// DefaultServeOptions serve /home/user/webapp on 0.0.0.0:9500.
func DefaultServeOptions() ServeOptions {
	return ServeOptions{
		Port:            constants.DefaultPort,
		Address:         constants.DefaultAddress,
		RootDirectory:   constants.DefaultRootDirectory,
		IndexFile:       constants.DefaultIndexFile,
		ShutdownTimeout: constants.DefaultShutdownTimeout,
		BindRetries:     constants.DefaultBindRetries,
	}
}

// ListenAddress is the host:port the server binds.
func (opts ServeOptions) ListenAddress() string {
	return net.JoinHostPort(opts.Address, strconv.Itoa(opts.Port))
}

// LocalURL is the address printed for humans.
func (opts ServeOptions) LocalURL() string {
	return fmt.Sprintf("http://localhost:%d", opts.Port)
}

// Finalize returns a copy of opts with an absolute root directory,
// or an error if the options can't be served.
func (opts ServeOptions) Finalize() (ServeOptions, error) {
	if opts.Port < 1 || opts.Port > 65535 {
		return ServeOptions{}, fmt.Errorf("invalid port %d: must be between 1 and 65535", opts.Port)
	}
	if opts.IndexFile == "" {
		return ServeOptions{}, errors.New("index file name can't be empty")
	}
	if strings.ContainsAny(opts.IndexFile, `/\`) {
		return ServeOptions{}, fmt.Errorf("invalid index file name %q: must not contain a path separator", opts.IndexFile)
	}
	if opts.RootDirectory == "" {
		return ServeOptions{}, errors.New("root directory can't be empty")
	}
	if opts.ShutdownTimeout < 0 {
		return ServeOptions{}, fmt.Errorf("invalid shutdown timeout %s", opts.ShutdownTimeout)
	}
	if opts.BindRetries < 0 {
		return ServeOptions{}, fmt.Errorf("invalid bind retries %d", opts.BindRetries)
	}

	root, err := util.AbsPath(opts.RootDirectory)
	if err != nil {
		return ServeOptions{}, errors.Wrap(err, "resolving root directory")
	}
	opts.RootDirectory = root

	return opts, nil
}

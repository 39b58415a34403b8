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
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/devserve/devserve/pkg/devserve/constants"
	"github.com/devserve/devserve/pkg/devserve/output/log"
	"github.com/devserve/devserve/pkg/devserve/util"
)

// FileConfig is the content of a config file. Keys match the command line
// flag names; missing keys leave the option untouched.
type FileConfig struct {
	Port            *int           `yaml:"port,omitempty"`
	Address         *string        `yaml:"address,omitempty"`
	Root            *string        `yaml:"root,omitempty"`
	Index           *string        `yaml:"index,omitempty"`
	ShutdownTimeout *time.Duration `yaml:"shutdown-timeout,omitempty"`
	BindRetries     *int           `yaml:"bind-retries,omitempty"`
}

// ResolveConfigFile determines the config location. The default location is
// optional, an explicitly given one is not.
func ResolveConfigFile(configFile string) (string, bool, error) {
	if configFile != "" {
		expanded, err := homedir.Expand(configFile)
		if err != nil {
			return "", false, errors.Wrapf(err, "expanding %q", configFile)
		}
		return expanded, true, nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", false, errors.Wrap(err, "retrieving home directory")
	}
	return filepath.Join(home, constants.DefaultConfigDir, constants.DefaultConfigFile), false, nil
}

// ReadConfigFile reads and parses a config file. A missing optional file yields
// an empty config.
func ReadConfigFile(filename string, required bool) (*FileConfig, error) {
	contents, err := afero.ReadFile(util.Fs, filename)
	if err != nil {
		if os.IsNotExist(err) && !required {
			log.Entry(context.TODO()).Debugf("No config file found at %q", filename)
			return &FileConfig{}, nil
		}
		return nil, errors.Wrap(err, "reading config file")
	}

	cfg := FileConfig{}
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %q", filename)
	}
	log.Entry(context.TODO()).Infof("Loaded defaults from %q", filename)
	return &cfg, nil
}

// ApplyTo copies the values present in the file to opts, skipping the
// options whose flag was set explicitly.
func (c *FileConfig) ApplyTo(opts *ServeOptions, isSet func(flag string) bool) {
	if c.Port != nil && !isSet("port") {
		opts.Port = *c.Port
	}
	if c.Address != nil && !isSet("address") {
		opts.Address = *c.Address
	}
	if c.Root != nil && !isSet("root") {
		opts.RootDirectory = *c.Root
	}
	if c.Index != nil && !isSet("index") {
		opts.IndexFile = *c.Index
	}
	if c.ShutdownTimeout != nil && !isSet("shutdown-timeout") {
		opts.ShutdownTimeout = *c.ShutdownTimeout
	}
	if c.BindRetries != nil && !isSet("bind-retries") {
		opts.BindRetries = *c.BindRetries
	}
}

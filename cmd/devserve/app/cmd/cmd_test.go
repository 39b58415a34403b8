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

package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/devserve/devserve/pkg/devserve/config"
	"github.com/devserve/devserve/pkg/devserve/util"
	"github.com/devserve/devserve/testutil"
)

func TestServeOptionLayers(t *testing.T) {
	tests := []struct {
		description string
		args        []string
		env         map[string]string
		files       map[string]string
		expected    func(*config.ServeOptions)
		shouldErr   bool
	}{
		{
			description: "defaults",
			expected:    func(*config.ServeOptions) {},
		},
		{
			description: "serve subcommand",
			args:        []string{"serve"},
			expected:    func(*config.ServeOptions) {},
		},
		{
			description: "flags",
			args:        []string{"--port", "8080", "--root", "/srv/www", "--index", "home.html", "--address", "127.0.0.1"},
			expected: func(o *config.ServeOptions) {
				o.Port = 8080
				o.RootDirectory = "/srv/www"
				o.IndexFile = "home.html"
				o.Address = "127.0.0.1"
			},
		},
		{
			description: "short flags on the serve subcommand",
			args:        []string{"serve", "-p", "8081", "-d", "/srv/www"},
			expected: func(o *config.ServeOptions) {
				o.Port = 8081
				o.RootDirectory = "/srv/www"
			},
		},
		{
			description: "environment",
			env:         map[string]string{"DEVSERVE_PORT": "7000", "DEVSERVE_SHUTDOWN_TIMEOUT": "1s"},
			expected: func(o *config.ServeOptions) {
				o.Port = 7000
				o.ShutdownTimeout = time.Second
			},
		},
		{
			description: "flag beats environment",
			args:        []string{"--port", "8080"},
			env:         map[string]string{"DEVSERVE_PORT": "7000"},
			expected:    func(o *config.ServeOptions) { o.Port = 8080 },
		},
		{
			description: "config file",
			args:        []string{"--config", "/etc/devserve.yaml"},
			files:       map[string]string{"/etc/devserve.yaml": "port: 6000\nroot: /srv/site\nbind-retries: 2\n"},
			expected: func(o *config.ServeOptions) {
				o.Port = 6000
				o.RootDirectory = "/srv/site"
				o.BindRetries = 2
				o.ConfigFile = "/etc/devserve.yaml"
			},
		},
		{
			description: "flag and environment beat config file",
			args:        []string{"--config", "/etc/devserve.yaml", "--port", "8080"},
			env:         map[string]string{"DEVSERVE_ROOT": "/from/env"},
			files:       map[string]string{"/etc/devserve.yaml": "port: 6000\nroot: /srv/site\n"},
			expected: func(o *config.ServeOptions) {
				o.Port = 8080
				o.RootDirectory = "/from/env"
				o.ConfigFile = "/etc/devserve.yaml"
			},
		},
		{
			description: "config file from environment",
			env:         map[string]string{"DEVSERVE_CONFIG": "/etc/devserve.yaml"},
			files:       map[string]string{"/etc/devserve.yaml": "index: main.html\n"},
			expected: func(o *config.ServeOptions) {
				o.IndexFile = "main.html"
				o.ConfigFile = "/etc/devserve.yaml"
			},
		},
		{
			description: "missing explicit config file",
			args:        []string{"--config", "/etc/devserve.yaml"},
			shouldErr:   true,
		},
		{
			description: "invalid port",
			args:        []string{"--port", "0"},
			shouldErr:   true,
		},
		{
			description: "invalid environment value",
			env:         map[string]string{"DEVSERVE_PORT": "ninety-five hundred"},
			shouldErr:   true,
		},
		{
			description: "unexpected argument",
			args:        []string{"public"},
			shouldErr:   true,
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			t.UnsetEnvsWithPrefix("DEVSERVE_")
			t.SetEnvs(test.env)
			t.Override(&util.Fs, testutil.NewFakeFs(test.files))
			restoreLogs(t)

			var got *config.ServeOptions
			t.Override(&runServer, func(_ context.Context, _ io.Writer, opts config.ServeOptions) error {
				got = &opts
				return nil
			})

			cmd := NewDevserveCommand(io.Discard, io.Discard)
			cmd.SetArgs(test.args)
			err := cmd.ExecuteContext(context.Background())

			var expected *config.ServeOptions
			if !test.shouldErr {
				opts := config.DefaultServeOptions()
				test.expected(&opts)
				expected = &opts
			}
			t.CheckErrorAndDeepEqual(test.shouldErr, err, expected, got)
		})
	}
}

func TestServeEnvFile(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		t.UnsetEnvsWithPrefix("DEVSERVE_")
		t.Override(&util.Fs, testutil.NewFakeFs(map[string]string{
			"/work/.env": "DEVSERVE_ROOT=/from/env-file\nDEVSERVE_PORT=9600\n",
		}))
		t.Cleanup(func() {
			os.Unsetenv("DEVSERVE_ROOT")
			os.Unsetenv("DEVSERVE_PORT")
		})
		restoreLogs(t)

		var got config.ServeOptions
		t.Override(&runServer, func(_ context.Context, _ io.Writer, opts config.ServeOptions) error {
			got = opts
			return nil
		})

		cmd := NewDevserveCommand(io.Discard, io.Discard)
		cmd.SetArgs([]string{"--env-file", "/work/.env", "--port", "8080"})
		err := cmd.ExecuteContext(context.Background())

		t.CheckNoError(err)
		t.CheckDeepEqual("/from/env-file", got.RootDirectory)
		t.CheckDeepEqual(8080, got.Port)
	})
}

func TestVerbosity(t *testing.T) {
	tests := []struct {
		description string
		args        []string
		env         map[string]string
		expected    logrus.Level
		shouldErr   bool
	}{
		{
			description: "default",
			args:        []string{"version"},
			expected:    logrus.WarnLevel,
		},
		{
			description: "flag",
			args:        []string{"version", "-v", "debug"},
			expected:    logrus.DebugLevel,
		},
		{
			description: "environment",
			args:        []string{"version"},
			env:         map[string]string{"DEVSERVE_VERBOSITY": "info"},
			expected:    logrus.InfoLevel,
		},
		{
			description: "invalid",
			args:        []string{"version", "-v", "loud"},
			shouldErr:   true,
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			t.UnsetEnvsWithPrefix("DEVSERVE_")
			t.SetEnvs(test.env)
			restoreLogs(t)

			cmd := NewDevserveCommand(io.Discard, io.Discard)
			cmd.SetArgs(test.args)
			err := cmd.Execute()

			t.CheckErrorAndDeepEqual(test.shouldErr, err, test.expected, logrus.GetLevel())
		})
	}
}

func TestSetFlagsFromEnvVariables(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		t.UnsetEnvsWithPrefix("DEVSERVE_")
		t.SetEnvs(map[string]string{
			"DEVSERVE_PORT":  "7000",
			"DEVSERVE_INDEX": "home.html",
		})

		opts := config.DefaultServeOptions()
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		AddServeFlags(flags, &opts)
		t.RequireNoError(flags.Parse([]string{"--index", "main.html"}))

		err := setFlagsFromEnvVariables(flags)

		t.CheckNoError(err)
		t.CheckDeepEqual(7000, opts.Port)
		t.CheckDeepEqual("main.html", opts.IndexFile)
		t.CheckTrue(flags.Changed("port"))
	})
}

func TestFlagToEnvVarName(t *testing.T) {
	testutil.CheckDeepEqual(t, "DEVSERVE_SHUTDOWN_TIMEOUT", FlagToEnvVarName(&pflag.Flag{Name: "shutdown-timeout"}))
	testutil.CheckDeepEqual(t, "DEVSERVE_ROOT", FlagToEnvVarName(&pflag.Flag{Name: "root"}))
}

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		description string
		args        []string
		expected    string
	}{
		{
			description: "default output",
			args:        []string{"version"},
			expected:    "v0.0.0-dev\n",
		},
		{
			description: "custom template",
			args:        []string{"version", "-o", "{{.Version}} {{.GitCommit}}"},
			expected:    "v0.0.0-dev ",
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			t.UnsetEnvsWithPrefix("DEVSERVE_")
			restoreLogs(t)

			var out bytes.Buffer
			cmd := NewDevserveCommand(&out, io.Discard)
			cmd.SetArgs(test.args)
			err := cmd.Execute()

			t.CheckErrorAndDeepEqual(false, err, test.expected, out.String())
		})
	}
}

func TestVersionCommandWriteError(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		t.UnsetEnvsWithPrefix("DEVSERVE_")
		restoreLogs(t)

		cmd := NewDevserveCommand(testutil.BadWriter{}, io.Discard)
		cmd.SetArgs([]string{"version"})
		err := cmd.Execute()

		t.CheckErrorContains("bad write", err)
	})
}

func restoreLogs(t *testutil.T) {
	out, level := logrus.StandardLogger().Out, logrus.GetLevel()
	t.Cleanup(func() {
		logrus.SetOutput(out)
		logrus.SetLevel(level)
	})
}

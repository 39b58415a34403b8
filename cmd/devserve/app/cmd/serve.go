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
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/devserve/devserve/pkg/devserve/config"
	"github.com/devserve/devserve/pkg/devserve/output/log"
	"github.com/devserve/devserve/pkg/devserve/server"
	"github.com/devserve/devserve/pkg/devserve/util"
)

// runServer is overridden in tests.
var runServer = func(ctx context.Context, out io.Writer, opts config.ServeOptions) error {
	return server.New(opts).Run(ctx, out)
}

// NewCmdServe describes the CLI command to serve a directory.
func NewCmdServe(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the root directory until interrupted",
	}
	bindServe(cmd, out)
	return cmd
}

func bindServe(cmd *cobra.Command, out io.Writer) {
	opts := config.DefaultServeOptions()
	AddServeFlags(cmd.Flags(), &opts)

	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return doServe(cmd.Context(), out, cmd.Flags(), &opts)
	}
}

// AddServeFlags binds the serving options to flags.
func AddServeFlags(f *pflag.FlagSet, opts *config.ServeOptions) {
	f.IntVarP(&opts.Port, "port", "p", opts.Port, "TCP port to listen on")
	f.StringVar(&opts.Address, "address", opts.Address, "Address to bind")
	f.StringVarP(&opts.RootDirectory, "root", "d", opts.RootDirectory, "Directory to serve files from")
	f.StringVar(&opts.IndexFile, "index", opts.IndexFile, "File served for `/` and for directories")
	f.DurationVar(&opts.ShutdownTimeout, "shutdown-timeout", opts.ShutdownTimeout, "Time in-flight requests get to complete after an interrupt")
	f.IntVar(&opts.BindRetries, "bind-retries", opts.BindRetries, "Number of times to retry binding the port before giving up")
	f.StringVar(&opts.ConfigFile, "config", "", "Path to a config file (default $HOME/.devserve/config.yaml)")
	f.StringVar(&opts.EnvFile, "env-file", "", "Path to a file of DEVSERVE_* variables to load")
}

func doServe(ctx context.Context, out io.Writer, flags *pflag.FlagSet, opts *config.ServeOptions) error {
	if opts.EnvFile != "" {
		if err := util.LoadEnvFile(opts.EnvFile); err != nil {
			return err
		}
		if err := setFlagsFromEnvVariables(flags); err != nil {
			return err
		}
	}

	configFile, required, err := config.ResolveConfigFile(opts.ConfigFile)
	if err != nil {
		return err
	}
	fileConfig, err := config.ReadConfigFile(configFile, required)
	if err != nil {
		return err
	}
	fileConfig.ApplyTo(opts, func(name string) bool { return flags.Changed(name) })

	finalOpts, err := opts.Finalize()
	if err != nil {
		return errors.Wrap(err, "invalid options")
	}
	log.Entry(ctx).Debugf("Serving with %+v", finalOpts)

	return runServer(ctx, out, finalOpts)
}

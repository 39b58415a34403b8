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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/devserve/devserve/pkg/devserve/constants"
	"github.com/devserve/devserve/pkg/devserve/output/log"
	"github.com/devserve/devserve/pkg/devserve/version"
)

// NewDevserveCommand returns the root command. Without a subcommand it serves,
// exactly like `devserve serve`.
func NewDevserveCommand(out, errOut io.Writer) *cobra.Command {
	var verbosity string

	rootCmd := &cobra.Command{
		Use:   "devserve",
		Short: "Serve a directory over HTTP with client-side caching disabled",
		Long: "devserve serves the files of a single directory over HTTP. `/` maps to index.html\n" +
			"and every response tells clients and proxies not to cache it.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setFlagsFromEnvVariables(cmd.Flags()); err != nil {
				return err
			}
			if err := log.SetupLogs(errOut, verbosity); err != nil {
				return err
			}
			log.Entry(cmd.Context()).Debugf("devserve %+v", version.Get())
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVarP(&verbosity, "verbosity", "v", constants.DefaultLogLevel.String(), "Log level (debug, info, warn, error, fatal, panic)")
	bindServe(rootCmd, out)

	rootCmd.AddCommand(NewCmdServe(out))
	rootCmd.AddCommand(NewCmdVersion(out))

	return rootCmd
}

// setFlagsFromEnvVariables sets every flag not given on the command line
// from its DEVSERVE_* environment variable, if present.
func setFlagsFromEnvVariables(flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || f.Name == "help" {
			return
		}
		envVar := FlagToEnvVarName(f)
		if val, present := os.LookupEnv(envVar); present {
			if setErr := flags.Set(f.Name, val); setErr != nil {
				err = fmt.Errorf("invalid value %q for %s: %w", val, envVar, setErr)
			}
		}
	})
	return err
}

// FlagToEnvVarName returns the environment variable mirroring a flag.
func FlagToEnvVarName(f *pflag.Flag) string {
	return constants.EnvPrefix + strings.ReplaceAll(strings.ToUpper(f.Name), "-", "_")
}

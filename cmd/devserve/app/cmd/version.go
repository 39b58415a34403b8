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
	"io"

	"github.com/spf13/cobra"

	"github.com/devserve/devserve/cmd/devserve/app/flags"
	"github.com/devserve/devserve/pkg/devserve/version"
)

// NewCmdVersion describes the CLI command to print the version.
func NewCmdVersion(out io.Writer) *cobra.Command {
	output := flags.NewTemplateFlag("{{.Version}}\n")

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.Template().Execute(out, version.Get())
		},
	}
	cmd.Flags().VarP(output, "output", "o", output.Usage())
	return cmd
}

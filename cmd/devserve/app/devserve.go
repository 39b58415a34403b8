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

package app

import (
	"context"
	"errors"
	"io"

	"github.com/devserve/devserve/cmd/devserve/app/cmd"
)

// Run executes the command line in os.Args until it completes or the
// process is interrupted.
func Run(out, stderr io.Writer) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	catchCtrlC(cancel)

	c := cmd.NewDevserveCommand(out, stderr)
	return c.ExecuteContext(ctx)
}

// ExitCode maps an error returned by Run to a process exit code.
// An interrupt is a clean exit.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, context.Canceled) {
		return 0
	}
	return 1
}

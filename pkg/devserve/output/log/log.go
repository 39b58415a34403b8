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

package log

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type contextKey struct{}

var ContextKey = contextKey{}

// RequestContext identifies the request a log line belongs to.
type RequestContext struct {
	ID     string
	Method string
	Path   string
}

// WithRequest returns a copy of ctx carrying the request fields.
func WithRequest(ctx context.Context, rc RequestContext) context.Context {
	return context.WithValue(ctx, ContextKey, rc)
}

// Entry takes an context.Context and constructs a logrus.Entry from it, adding
// fields for the request being served, if any.
func Entry(ctx context.Context) *logrus.Entry {
	val := ctx.Value(ContextKey)
	if rc, ok := val.(RequestContext); ok {
		return logrus.WithFields(logrus.Fields{
			"request_id": rc.ID,
			"method":     rc.Method,
			"path":       rc.Path,
		})
	}

	return logrus.NewEntry(logrus.StandardLogger())
}

// SetupLogs configures the global logger to write to out at the given level.
func SetupLogs(out io.Writer, level string) error {
	logrus.SetOutput(out)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	logrus.SetLevel(lvl)
	return nil
}

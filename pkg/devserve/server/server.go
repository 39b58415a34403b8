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

package server

import (
	"context"
	"io"
	stdlog "log"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/devserve/devserve/pkg/devserve/color"
	"github.com/devserve/devserve/pkg/devserve/config"
	"github.com/devserve/devserve/pkg/devserve/fileserver"
	"github.com/devserve/devserve/pkg/devserve/output/log"
	"github.com/devserve/devserve/pkg/devserve/util"
)

// Server serves a root directory over HTTP.
type Server struct {
	opts       config.ServeOptions
	httpServer *http.Server
}

// New creates a server for opts. Nothing is bound until Run.
func New(opts config.ServeOptions) *Server {
	return &Server{
		opts: opts,
		httpServer: &http.Server{
			Handler: fileserver.WithRequestLogging(fileserver.NewHandler(opts)),
			// `OPTIONS *` goes through the handler like any other request.
			DisableGeneralOptionsHandler: true,
		},
	}
}

// Run binds the listening socket and serves until ctx is cancelled. In-flight
// requests get opts.ShutdownTimeout to complete. A cancelled ctx is a clean
// shutdown and returns nil.
func (s *Server) Run(ctx context.Context, out io.Writer) error {
	color.Fprintf(out, color.Default, "Starting server on port %d...\n", s.opts.Port)
	color.Fprintf(out, color.Default, "Server directory: %s\n", s.opts.RootDirectory)

	if !util.IsDir(s.opts.RootDirectory) {
		color.Fprintf(out, color.Yellow, "Warning: %s is not a directory, every request will be a 404\n", s.opts.RootDirectory)
	}

	l, err := s.listen(ctx)
	if err != nil {
		return err
	}

	color.Fprintln(out, color.Green, "Server running at "+s.opts.LocalURL())
	return s.serve(ctx, out, l)
}

func (s *Server) listen(ctx context.Context) (net.Listener, error) {
	addr := s.opts.ListenAddress()

	var l net.Listener
	bind := func() error {
		var err error
		var lc net.ListenConfig
		l, err = lc.Listen(ctx, "tcp", addr)
		return err
	}

	retries := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(s.opts.BindRetries))
	err := backoff.RetryNotify(bind, backoff.WithContext(retries, ctx), func(err error, next time.Duration) {
		log.Entry(ctx).Warnf("Unable to bind %s, retrying in %s: %v", addr, next.Round(time.Millisecond), err)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "binding to %s", addr)
	}

	log.Entry(ctx).Infof("Listening on %s", l.Addr())
	return l, nil
}

func (s *Server) serve(ctx context.Context, out io.Writer, l net.Listener) error {
	errLog := logrus.StandardLogger().WriterLevel(logrus.DebugLevel)
	defer errLog.Close()
	s.httpServer.ErrorLog = stdlog.New(errLog, "", 0)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.httpServer.Serve(noCacheListener{l}); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "serving")
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		s.shutdown(ctx)
		return nil
	})

	err := g.Wait()
	color.Fprintln(out, color.Default, "\nServer stopped.")
	return err
}

// shutdown stops accepting connections and waits for in-flight requests,
// closing them forcibly after the shutdown timeout.
func (s *Server) shutdown(ctx context.Context) {
	timeoutCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(timeoutCtx); err != nil {
		log.Entry(ctx).Warnf("Forcing shutdown after %s: %v", s.opts.ShutdownTimeout, err)
		if err := s.httpServer.Close(); err != nil {
			log.Entry(ctx).Debugf("Closing server: %v", err)
		}
	}
}

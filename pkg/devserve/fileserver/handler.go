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

package fileserver

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/devserve/devserve/pkg/devserve/config"
	"github.com/devserve/devserve/pkg/devserve/constants"
	"github.com/devserve/devserve/pkg/devserve/output/log"
	"github.com/devserve/devserve/pkg/devserve/util"
)

const probeSize = 32 * 1024

// Handler serves the files below a root directory. Directories are served
// through their index file; there are no directory listings.
type Handler struct {
	fs        afero.Fs
	indexFile string
}

// NewHandler creates a Handler for the root directory and index file of opts.
func NewHandler(opts config.ServeOptions) *Handler {
	return &Handler{
		fs:        afero.NewBasePathFs(util.Fs, opts.RootDirectory),
		indexFile: opts.IndexFile,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	SetNoCacheHeaders(w.Header())
	ctx := r.Context()

	if !strings.HasPrefix(r.URL.Path, "/") || strings.ContainsRune(r.URL.Path, 0) {
		log.Entry(ctx).Debugf("Malformed request target %q", r.RequestURI)
		writeError(w, http.StatusBadRequest)
		return
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeError(w, http.StatusNotImplemented)
		return
	}

	name, err := Resolve(r.URL.Path, h.indexFile)
	if err != nil {
		log.Entry(ctx).Debugf("Rejecting %q: %v", r.URL.Path, err)
		writeError(w, http.StatusNotFound)
		return
	}

	info, err := h.fs.Stat(name)
	if err != nil {
		h.fail(ctx, w, name, err)
		return
	}

	if info.IsDir() {
		if !strings.HasSuffix(r.URL.Path, "/") {
			redirectToDir(w, r, name)
			return
		}

		name = path.Join(name, h.indexFile)
		if info, err = h.fs.Stat(name); err != nil {
			h.fail(ctx, w, name, err)
			return
		}
		if info.IsDir() {
			writeError(w, http.StatusNotFound)
			return
		}
	} else if r.URL.Path != "/" && strings.HasSuffix(r.URL.Path, "/") {
		writeError(w, http.StatusNotFound)
		return
	}

	h.serveFile(ctx, w, r, name, info)
}

func (h *Handler) serveFile(ctx context.Context, w http.ResponseWriter, r *http.Request, name string, info os.FileInfo) {
	f, err := h.fs.Open(name)
	if err != nil {
		h.fail(ctx, w, name, err)
		return
	}
	defer f.Close()

	// Read ahead so that read errors can still be reported with a status code.
	probe := make([]byte, min(info.Size(), probeSize))
	n, err := io.ReadFull(f, probe)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		h.fail(ctx, w, name, err)
		return
	}

	header := w.Header()
	header.Set("Content-Type", contentType(name))
	header.Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	header.Set("Last-Modified", info.ModTime().UTC().Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}

	if _, err := w.Write(probe[:n]); err != nil {
		log.Entry(ctx).Debugf("Writing %s: %v", name, err)
		return
	}
	if remaining := info.Size() - int64(n); remaining > 0 {
		if _, err := io.CopyN(w, f, remaining); err != nil {
			// The status line is gone already, drop the connection instead.
			log.Entry(ctx).Warnf("Streaming %s: %v", name, err)
			panic(http.ErrAbortHandler)
		}
	}
}

// fail reports a filesystem error: missing files are a 404, anything else a 500.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, name string, err error) {
	if os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR) {
		log.Entry(ctx).Debugf("Not found: %s", name)
		writeError(w, http.StatusNotFound)
		return
	}

	log.Entry(ctx).Errorf("Reading %s: %v", name, err)
	writeError(w, http.StatusInternalServerError)
}

func redirectToDir(w http.ResponseWriter, r *http.Request, name string) {
	target := url.URL{
		Path:     strings.TrimSuffix(name, "/") + "/",
		RawQuery: r.URL.RawQuery,
	}
	http.Redirect(w, r, target.String(), http.StatusMovedPermanently)
}

// SetNoCacheHeaders forbids clients and proxies to cache the response.
func SetNoCacheHeaders(header http.Header) {
	for _, h := range constants.NoCacheHeaders {
		header.Set(h.Name, h.Value)
	}
}

func contentType(name string) string {
	if ctype := mime.TypeByExtension(path.Ext(name)); ctype != "" {
		return ctype
	}
	return constants.DefaultContentType
}

func writeError(w http.ResponseWriter, code int) {
	header := w.Header()
	header.Del("Content-Length")
	header.Del("Last-Modified")
	header.Set("Content-Type", "text/plain; charset=utf-8")
	header.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	fmt.Fprintf(w, "%d %s\n", code, http.StatusText(code))
}

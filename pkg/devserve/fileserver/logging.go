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
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/devserve/devserve/pkg/devserve/output/log"
)

type statusRecorder struct {
	http.ResponseWriter
	status  int
	written uint64
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.written += uint64(n)
	return n, err
}

// WithRequestLogging tags the request context with an id and logs the outcome
// of each request at debug level.
func WithRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := log.WithRequest(r.Context(), log.RequestContext{
			ID:     uuid.NewString(),
			Method: r.Method,
			Path:   r.URL.Path,
		})

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r.WithContext(ctx))

		log.Entry(ctx).Debugf("%d %s, %s in %s", rec.status, http.StatusText(rec.status), humanize.Bytes(rec.written), time.Since(start))
	})
}

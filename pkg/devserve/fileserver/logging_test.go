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
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/devserve/devserve/pkg/devserve/output/log"
	"github.com/devserve/devserve/testutil"
)

func TestWithRequestLogging(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		var out bytes.Buffer
		t.Override(&logrus.StandardLogger().Out, &out)
		t.Override(&logrus.StandardLogger().Level, logrus.DebugLevel)

		var seen log.RequestContext
		handler := WithRequestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(log.ContextKey).(log.RequestContext)
			w.WriteHeader(http.StatusTeapot)
			w.Write([]byte("short and stout"))
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pot", nil))

		t.CheckDeepEqual(http.StatusTeapot, rec.Code)
		t.CheckDeepEqual("/pot", seen.Path)
		t.CheckDeepEqual(http.MethodGet, seen.Method)
		t.CheckFalse(seen.ID == "")
		t.CheckContains("418 I'm a teapot, 15 B", out.String())
		t.CheckContains("request_id="+seen.ID, out.String())
	})
}

func TestStatusRecorderDefaultsToOK(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}

	rec.Write([]byte("hello"))

	testutil.CheckDeepEqual(t, http.StatusOK, rec.status)
	testutil.CheckDeepEqual(t, uint64(5), rec.written)
}

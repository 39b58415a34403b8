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
	"bytes"
	"net"
	"net/http"

	"github.com/devserve/devserve/pkg/devserve/fileserver"
)

// rejectionHeaders is the header block net/http writes, straight to the
// connection, when it rejects a request before any handler runs.
const rejectionHeaders = "\r\nContent-Type: text/plain; charset=utf-8\r\nConnection: close\r\n\r\n"

// noCacheListener makes the responses net/http generates on its own (malformed
// request lines, missing Host, oversized headers) carry the no-cache headers
// like every handler response.
type noCacheListener struct {
	net.Listener
}

func (l noCacheListener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}
	return &noCacheConn{Conn: conn}, nil
}

type noCacheConn struct {
	net.Conn
}

func (c *noCacheConn) Write(p []byte) (int, error) {
	patched, ok := addNoCacheHeaders(p)
	if !ok {
		return c.Conn.Write(p)
	}
	if _, err := c.Conn.Write(patched); err != nil {
		return 0, err
	}
	return len(p), nil
}

// addNoCacheHeaders rewrites a complete rejection response written by net/http.
// Anything else, including handler output, is left untouched.
func addNoCacheHeaders(p []byte) ([]byte, bool) {
	if !bytes.HasPrefix(p, []byte("HTTP/1.1 ")) {
		return nil, false
	}
	eol := bytes.Index(p, []byte("\r\n"))
	if eol < 0 || !bytes.HasPrefix(p[eol:], []byte(rejectionHeaders)) {
		return nil, false
	}
	body := p[eol+len(rejectionHeaders):]
	if bytes.Contains(body, []byte("\r\n")) {
		return nil, false
	}

	header := http.Header{}
	fileserver.SetNoCacheHeaders(header)

	var buf bytes.Buffer
	buf.Write(p[:eol])
	buf.WriteString("\r\n")
	if err := header.Write(&buf); err != nil {
		return nil, false
	}
	buf.WriteString(rejectionHeaders[len("\r\n"):])
	buf.Write(body)
	return buf.Bytes(), true
}

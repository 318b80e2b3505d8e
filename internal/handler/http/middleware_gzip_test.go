// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		requestBody     []byte
		compressRequest bool
		contentType     string
		response        string
		wantStatus      int
		wantGzipped     bool
	}{
		{
			name:           "compress JSON when client accepts gzip",
			acceptEncoding: "gzip",
			contentType:    "application/json",
			response:       `{"records":[],"length":0}`,
			wantStatus:     http.StatusOK,
			wantGzipped:    true,
		},
		{
			name:        "no compression when client doesn't accept gzip",
			contentType: "application/json",
			response:    `{"accepted":1}`,
			wantStatus:  http.StatusOK,
		},
		{
			name:           "accept-encoding with quality values",
			acceptEncoding: "gzip;q=1.0, identity;q=0.5",
			contentType:    "text/plain",
			response:       "1.2.3",
			wantStatus:     http.StatusOK,
			wantGzipped:    true,
		},
		{
			name:           "png passes through",
			acceptEncoding: "gzip",
			contentType:    "image/png",
			response:       "\x89PNG\r\n\x1a\n",
			wantStatus:     http.StatusOK,
		},
		{
			name:            "decompress request and compress response",
			acceptEncoding:  "gzip",
			contentEncoding: "gzip",
			requestBody:     []byte(`{"text":"part"}`),
			compressRequest: true,
			contentType:     "application/json",
			response:        "echo: ",
			wantStatus:      http.StatusOK,
			wantGzipped:     true,
		},
		{
			name:            "invalid gzip request body",
			contentEncoding: "gzip",
			requestBody:     []byte("not gzipped"),
			wantStatus:      http.StatusBadRequest,
		},
		{
			name:           "large body",
			acceptEncoding: "gzip",
			contentType:    "application/json",
			response:       strings.Repeat(`{"id":"s1"},`, 1000),
			wantStatus:     http.StatusOK,
			wantGzipped:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRequest string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Body != nil {
					b, _ := io.ReadAll(r.Body)
					gotRequest = string(b)
				}
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(http.StatusOK)
				io.WriteString(w, tt.response+gotRequest)
			})

			body := tt.requestBody
			if tt.compressRequest {
				body = gzipBytes(t, body)
			}
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			want := tt.response + string(tt.requestBody)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, want, gunzip(t, rr.Body.Bytes()))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, want, rr.Body.String())
			}
		})
	}
}

func TestGZip_ImplicitHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"ok":true}`)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"ok":true}`, gunzip(t, rr.Body.Bytes()))
}

func TestGZip_DropsContentLengthWhenCompressing(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("Content-Length", "5")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "1.2.3")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Content-Length"))
	assert.Equal(t, "1.2.3", gunzip(t, rr.Body.Bytes()))
}

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

func gzipped(t *testing.T, payload string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZipBody(t *testing.T) {
	tests := []struct {
		name            string
		contentEncoding string
		body            []byte
		wantStatus      int
		wantBody        string
	}{
		{
			name:            "gzip body is decompressed",
			contentEncoding: "gzip",
			body:            gzipped(t, `{"value":1}`),
			wantStatus:      http.StatusOK,
			wantBody:        `{"value":1}`,
		},
		{
			name:       "plain body passes through",
			body:       []byte(`{"value":2}`),
			wantStatus: http.StatusOK,
			wantBody:   `{"value":2}`,
		},
		{
			name:            "corrupt gzip is rejected",
			contentEncoding: "gzip",
			body:            []byte("definitely not gzip"),
			wantStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				seenBody     string
				seenEncoding string
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				require.NoError(t, r.Body.Close())
				seenBody = string(b)
				seenEncoding = r.Header.Get("Content-Encoding")
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/weather/protected/humidity", bytes.NewReader(tt.body))
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rr := httptest.NewRecorder()
			withGZipBody(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, seenBody)
				assert.Empty(t, seenEncoding)
			} else {
				assert.True(t, strings.Contains(rr.Body.String(), ErrInvalidContentEncoding.Error()))
			}
		})
	}
}

func TestWrappedReadCloser_ClosesOnce(t *testing.T) {
	calls := 0
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { calls++ }}

	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close())
	assert.Equal(t, 1, calls)
}

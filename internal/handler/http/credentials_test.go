// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jere Mattila

package http

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func basicAuth(email, password string) string {
	return basicScheme + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

func TestCredentials(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		wantEmail    string
		wantPassword string
		wantOK       bool
	}{
		{
			name:         "well formed",
			header:       basicAuth("john@example.com", "secret-password"),
			wantEmail:    "john@example.com",
			wantPassword: "secret-password",
			wantOK:       true,
		},
		{
			name:         "password containing colons",
			header:       basicAuth("john@example.com", "pa:ss:word"),
			wantEmail:    "john@example.com",
			wantPassword: "pa:ss:word",
			wantOK:       true,
		},
		{
			name:   "absent header",
			header: "",
			wantOK: false,
		},
		{
			name:   "wrong scheme",
			header: "Bearer abcdef",
			wantOK: false,
		},
		{
			name:   "lowercase scheme is rejected",
			header: "basic " + base64.StdEncoding.EncodeToString([]byte("a@b.c:pw")),
			wantOK: false,
		},
		{
			name:   "undecodable base64",
			header: basicScheme + "%%%not-base64%%%",
			wantOK: false,
		},
		{
			name:   "decoded text without separator",
			header: basicScheme + base64.StdEncoding.EncodeToString([]byte("no-colon-here")),
			wantOK: false,
		},
		{
			name:   "invalid utf8 payload",
			header: basicScheme + base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, ':', 'p'}),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			email, password, ok := credentials(r)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantEmail, email)
				assert.Equal(t, tt.wantPassword, password)
			}
		})
	}
}

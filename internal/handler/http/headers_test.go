// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jere Mattila

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptsJSON(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   bool
	}{
		{name: "absent header defaults to accept", accept: "", want: true},
		{name: "exact json", accept: "application/json", want: true},
		{name: "wildcard", accept: "*/*", want: true},
		{name: "browser list with wildcard", accept: "text/html,application/xhtml+xml,*/*;q=0.8", want: true},
		{name: "json among several values", accept: "text/html, application/json;q=0.9", want: true},
		{name: "html only", accept: "text/html", want: false},
		{name: "xml only", accept: "application/xml", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			if tt.accept != "" {
				r.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.want, acceptsJSON(r))
		})
	}
}

func TestIsJSONBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        bool
	}{
		{name: "exact", contentType: "application/json", want: true},
		{name: "case insensitive", contentType: "Application/JSON", want: true},
		{name: "absent", contentType: "", want: false},
		{name: "charset parameter disqualifies", contentType: "application/json; charset=utf-8", want: false},
		{name: "form encoding", contentType: "application/x-www-form-urlencoded", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/register", nil)
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}
			assert.Equal(t, tt.want, isJSONBody(r))
		})
	}
}

package http

import (
	"encoding/base64"
	"net/http"
	"strings"
	"unicode/utf8"
)

const basicScheme = "Basic "

// credentials parses the Authorization header into an email/password pair.
//
// The header must carry the exact "Basic" scheme followed by base64 that
// decodes to UTF-8 text containing at least one ':'; the first ':' splits
// email from password. A malformed header (absent, wrong scheme, undecodable
// base64, missing separator) yields ok=false. Extraction never
// fails loudly; a bad header is simply an unauthenticated request.
func credentials(r *http.Request) (email, password string, ok bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, basicScheme) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(authHeader[len(basicScheme):])
	if err != nil || !utf8.Valid(decoded) {
		return "", "", false
	}

	return strings.Cut(string(decoded), ":")
}

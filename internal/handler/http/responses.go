package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// errorBody is the JSON envelope for every error response that carries a
// body: {"error": <string or array of strings>}.
type errorBody struct {
	Error any `json:"error"`
}

// writeJSON serializes data and writes it with the given status code.
// A marshalling failure downgrades to a plain 500; by the time data reaches
// this function it is always one of our own response types, so that path is
// effectively unreachable.
func writeJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// createdResource writes payload with 201 Created.
func createdResource(w http.ResponseWriter, payload any) {
	writeJSON(w, payload, http.StatusCreated)
}

// basicAuthChallenge writes the 401 response that prompts the client for
// Basic credentials.
func basicAuthChallenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Basic")
	w.WriteHeader(http.StatusUnauthorized)
}

// badRequest writes a 400. A non-nil errorMsg (a string or a slice of
// strings) is wrapped in the {"error": ...} envelope; nil writes a bare 400.
func badRequest(w http.ResponseWriter, errorMsg any) {
	if errorMsg != nil {
		writeJSON(w, errorBody{Error: errorMsg}, http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusBadRequest)
}

func forbidden(w http.ResponseWriter) {
	w.WriteHeader(http.StatusForbidden)
}

func notFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter) {
	w.WriteHeader(http.StatusMethodNotAllowed)
}

func contentTypeNotAcceptable(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotAcceptable)
}

// sendOptions answers a CORS preflight for a known collection route with the
// allowed methods from the route table. Unknown paths are a 404, same as any
// other request to them.
func sendOptions(w http.ResponseWriter, path string) {
	methods, ok := allowedMethods[path]
	if !ok {
		notFound(w)
		return
	}

	header := w.Header()
	header.Set("Access-Control-Allow-Methods", strings.Join(methods, ","))
	header.Set("Access-Control-Allow-Headers", "Content-Type,Accept")
	header.Set("Access-Control-Max-Age", "86400")
	header.Set("Access-Control-Expose-Headers", "Content-Type,Accept")
	w.WriteHeader(http.StatusNoContent)
}

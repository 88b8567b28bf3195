package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rao30/bake-house/external/bakeryapi"
)

// newTestAPI points a real client at a stub backend.
func newTestAPI(t *testing.T, tokens bakeryapi.TokenSource, handler http.Handler) *bakeryapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return bakeryapi.NewClient(srv.URL, tokens)
}

package pypi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	depserr "github.com/matzehuels/depscan/pkg/errors"
	"github.com/matzehuels/depscan/pkg/integrations"
)

func TestClient_LatestVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/flask/json" {
			json.NewEncoder(w).Encode(apiResponse{
				Info: apiInfo{Name: "Flask", Version: "3.0.3"},
			})
		} else {
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL)

	latest, err := c.LatestVersion(context.Background(), "flask")
	if err != nil {
		t.Fatalf("LatestVersion failed: %v", err)
	}
	if latest != "3.0.3" {
		t.Errorf("expected 3.0.3, got %s", latest)
	}
}

func TestClient_LatestVersion_NormalizesName(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewEncoder(w).Encode(apiResponse{Info: apiInfo{Version: "0.6.3"}})
	}))
	defer server.Close()

	c := testClient(t, server.URL)

	if _, err := c.LatestVersion(context.Background(), "Flask_Login"); err != nil {
		t.Fatalf("LatestVersion failed: %v", err)
	}
	if path != "/flask-login/json" {
		t.Errorf("requested %q, want /flask-login/json", path)
	}
}

func TestClient_LatestVersion_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	c := testClient(t, server.URL)

	_, err := c.LatestVersion(context.Background(), "missing-pkg")
	if err == nil {
		t.Fatal("expected error for missing package")
	}
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if !depserr.Is(err, depserr.ErrCodePackageNotFound) {
		t.Errorf("expected PACKAGE_NOT_FOUND, got %v", depserr.GetCode(err))
	}
}

func TestClient_LatestVersion_EmptyVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"info":{"name":"ghost","version":""}}`))
	}))
	defer server.Close()

	c := testClient(t, server.URL)

	_, err := c.LatestVersion(context.Background(), "ghost")
	if !depserr.Is(err, depserr.ErrCodePackageNotFound) {
		t.Errorf("expected PACKAGE_NOT_FOUND, got %v", err)
	}
}

func TestClient_LatestVersion_Unavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}},
		{"forbidden", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			c := testClient(t, server.URL)

			_, err := c.LatestVersion(context.Background(), "requests")
			if !depserr.Is(err, depserr.ErrCodeRegistryUnavailable) {
				t.Errorf("expected REGISTRY_UNAVAILABLE, got %v", err)
			}
		})
	}
}

func TestClient_LatestVersion_InvalidName(t *testing.T) {
	c := testClient(t, "http://127.0.0.1:0")

	for _, name := range []string{"", "-leading", "bad name", "pkg/../x"} {
		_, err := c.LatestVersion(context.Background(), name)
		if !depserr.Is(err, depserr.ErrCodeInvalidPackage) {
			t.Errorf("LatestVersion(%q): expected INVALID_PACKAGE, got %v", name, err)
		}
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(integrations.Options{})
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
	}
	if c.Name() != "pypi" {
		t.Errorf("Name() = %q, want pypi", c.Name())
	}
}

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	return NewClient(integrations.Options{BaseURL: serverURL, Timeout: 5 * time.Second})
}

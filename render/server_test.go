package render

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pthm/icondata/lib/encoding"
)

func newTestServer(t *testing.T, sensitive bool) *Server {
	t.Helper()
	enc, err := encoding.NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatal(err)
	}
	s := NewServer(enc, "/icons", Class("icon"))
	s.Sensitive = sensitive
	return s
}

func TestServerRoundTrip(t *testing.T) {
	for _, sensitive := range []bool{false, true} {
		s := newTestServer(t, sensitive)

		url, err := s.URL(square)
		if err != nil {
			t.Fatalf("URL() error = %v", err)
		}
		if !strings.HasPrefix(url, "/icons/") || !strings.HasSuffix(url, ".svg") {
			t.Fatalf("URL() = %q", url)
		}

		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("sensitive=%v: status = %d, want 200", sensitive, rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `class="icon"`) || !strings.Contains(body, `<path d="M0 0h1v1H0z"/>`) {
			t.Errorf("body = %q", body)
		}
	}
}

func TestServerRejects(t *testing.T) {
	s := newTestServer(t, false)
	url, err := s.URL(square)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"tampered", http.MethodGet, strings.Replace(url, ".", "x.", 1), http.StatusNotFound},
		{"no suffix", http.MethodGet, strings.TrimSuffix(url, ".svg"), http.StatusNotFound},
		{"outside prefix", http.MethodGet, "/other/abc.svg", http.StatusNotFound},
		{"empty", http.MethodGet, "/icons/.svg", http.StatusNotFound},
		{"post", http.MethodPost, url, http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

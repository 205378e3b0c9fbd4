package icondataecho

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pthm/icondata"
	"github.com/pthm/icondata/render"
)

var dot = icondata.CustomIcon{
	ViewBox: icondata.Value("0 0 2 2"),
	Data:    `<circle cx="1" cy="1" r="1"/>`,
}

func get(t *testing.T, e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestMount(t *testing.T) {
	e := echo.New()
	icons := Mount(e, WithRender(render.Class("icon")))

	url, err := icons.URL(dot)
	if err != nil {
		t.Fatalf("URL() error = %v", err)
	}
	if !strings.HasPrefix(url, "/_icons/") {
		t.Errorf("URL() = %q, want /_icons/ prefix", url)
	}

	rec := get(t, e, http.MethodGet, url)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `class="icon"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestMountWithKey(t *testing.T) {
	key := make([]byte, 32)

	e1 := echo.New()
	url, err := Mount(e1, WithKey(key)).URL(dot)
	if err != nil {
		t.Fatal(err)
	}

	// A second server with the same key accepts the reference.
	e2 := echo.New()
	Mount(e2, WithKey(key))
	if rec := get(t, e2, http.MethodGet, url); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	// Random keys do not.
	e3 := echo.New()
	Mount(e3)
	if rec := get(t, e3, http.MethodGet, url); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestMountWithPath(t *testing.T) {
	e := echo.New()
	icons := Mount(e, WithPath("/static/icons/"), WithSensitive())

	url, err := icons.URL(dot)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(url, "/static/icons/") {
		t.Errorf("URL() = %q", url)
	}
	if rec := get(t, e, http.MethodGet, url); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestMountGroup(t *testing.T) {
	e := echo.New()
	icons := MountGroup(e.Group("/app"), "/app")

	url, err := icons.URL(dot)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(url, "/app/_icons/") {
		t.Errorf("URL() = %q", url)
	}
	if rec := get(t, e, http.MethodGet, url); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestPOSTNotAllowed(t *testing.T) {
	e := echo.New()
	icons := Mount(e)
	url, _ := icons.URL(dot)

	if rec := get(t, e, http.MethodPost, url); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for POST, got %d", rec.Code)
	}
}

func TestRender(t *testing.T) {
	e := echo.New()
	e.GET("/dot", func(c echo.Context) error {
		return Render(c, dot, render.Title("Dot"))
	})

	rec := get(t, e, http.MethodGet, "/dot")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Dot</title>") || !strings.Contains(body, `<circle cx="1" cy="1" r="1"/>`) {
		t.Errorf("body = %q", body)
	}
}

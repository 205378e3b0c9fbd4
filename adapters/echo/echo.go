// Package icondataecho provides Echo framework integration for icondata.
//
// Mount an icon server onto an Echo instance or group:
//
//	e := echo.New()
//	icons := icondataecho.Mount(e)
//	src, _ := icons.URL(icondata.FromLu(icondata.LuHouse))
//
// Or mount on a group with middleware:
//
//	g := e.Group("/app", authMiddleware)
//	icons := icondataecho.MountGroup(g, "/app")
package icondataecho

import (
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pthm/icondata"
	"github.com/pthm/icondata/lib/encoding"
	"github.com/pthm/icondata/render"
)

// Option configures Mount and MountGroup.
type Option func(*options)

type options struct {
	key       []byte
	path      string
	sensitive bool
	render    []render.Option
}

// WithKey sets the key that authenticates icon references.
// The key should be at least 32 bytes of cryptographically random data.
// If not provided, a random key is generated, which invalidates issued
// references on restart.
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithPath sets the URL path prefix for icon routes.
// Defaults to "/_icons/".
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithSensitive encrypts references instead of signing them.
func WithSensitive() Option {
	return func(o *options) {
		o.sensitive = true
	}
}

// WithRender sets the render options of served documents.
func WithRender(opts ...render.Option) Option {
	return func(o *options) {
		o.render = append(o.render, opts...)
	}
}

// Mount creates an icon server and mounts it on an Echo instance.
//
//	e := echo.New()
//	icons := icondataecho.Mount(e, icondataecho.WithKey(key))
func Mount(e *echo.Echo, opts ...Option) *render.Server {
	srv, path := newServer("", opts)
	e.Any(path+"*", echo.WrapHandler(srv))
	return srv
}

// MountGroup creates an icon server and mounts it on an Echo group.
// prefix must match the group's prefix; the server issues URLs under it.
func MountGroup(g *echo.Group, prefix string, opts ...Option) *render.Server {
	srv, path := newServer(prefix, opts)
	g.Any(path+"*", echo.WrapHandler(srv))
	return srv
}

// newServer returns the server and its route path relative to prefix.
func newServer(prefix string, opts []Option) (*render.Server, string) {
	o := &options{path: "/_icons/"}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("icondataecho: failed to generate random key: %v", err))
		}
	}

	enc, err := encoding.NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("icondataecho: %v", err))
	}
	srv := render.NewServer(enc, prefix+o.path, o.render...)
	srv.Sensitive = o.sensitive
	return srv, o.path
}

// Render writes icon as an inline <svg> element to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return icondataecho.Render(c, icondata.FromLu(icondata.LuHouse), render.Class("h-4 w-4"))
//	}
func Render(c echo.Context, icon icondata.Icon, opts ...render.Option) error {
	c.Response().Header().Set(echo.HeaderContentType, "image/svg+xml")
	c.Response().WriteHeader(http.StatusOK)
	return render.SVG(icon, opts...).Render(c.Request().Context(), c.Response())
}

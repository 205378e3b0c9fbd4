package render

import (
	"net/http"
	"strings"

	"github.com/pthm/icondata"
	"github.com/pthm/icondata/lib/encoding"
)

// Server serves icons addressed by encoded references at
// <prefix><reference>.svg. Mount it under prefix:
//
//	enc, _ := encoding.NewEncoder(key)
//	icons := render.NewServer(enc, "/icons/")
//	mux.Handle("/icons/", icons)
//	src, _ := icons.URL(icondata.FromLu(icondata.LuHouse))
type Server struct {
	enc    *encoding.Encoder
	prefix string
	opts   []Option

	// Sensitive makes references opaque instead of merely signed.
	Sensitive bool
}

// NewServer creates a server whose documents are rendered with opts.
func NewServer(enc *encoding.Encoder, prefix string, opts ...Option) *Server {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Server{enc: enc, prefix: prefix, opts: opts}
}

// URL returns the path under which the server serves icon.
func (s *Server) URL(icon icondata.Icon) (string, error) {
	ref, err := s.enc.Encode(icon, s.Sensitive)
	if err != nil {
		return "", err
	}
	return s.prefix + ref + ".svg", nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ref, ok := strings.CutPrefix(r.URL.Path, s.prefix)
	if ok {
		ref, ok = strings.CutSuffix(ref, ".svg")
	}
	if !ok || ref == "" {
		http.NotFound(w, r)
		return
	}

	icon, err := s.enc.Decode(ref, s.Sensitive)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	Handler(icon, s.opts...).ServeHTTP(w, r)
}

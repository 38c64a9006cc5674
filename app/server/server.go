// Package server hosts a framework.App on net/http. The runtime owns
// sockets, connection lifecycle and per-call goroutines; this adapter
// only translates between its types and the framework's.
package server

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Icarus-313/Poridhi-Framework/app/framework"
	"github.com/Icarus-313/Poridhi-Framework/app/types"
)

type Server struct {
	addr string
	app  *framework.App
}

func New(addr string, app *framework.App) *Server {
	return &Server{addr: addr, app: app}
}

// ServeHTTP builds the per-call Request, dispatches it, and emits the
// resulting status line, ordered headers and body.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := types.NewRequest(types.Method(r.Method), r.URL.Path, r.URL.RawQuery)
	res := s.app.Dispatch(req)
	writeResponse(w, res)
}

// Run blocks serving the app on the configured address.
func (s *Server) Run() error {
	log.Printf("listening on %s", s.addr)
	return http.ListenAndServe(s.addr, s)
}

func writeResponse(w http.ResponseWriter, res *types.Response) {
	headers := w.Header()
	for _, h := range res.Headers {
		headers.Add(h.Name, h.Value)
	}
	if _, ok := res.HeaderValue("Content-Length"); !ok {
		headers.Set("Content-Length", strconv.Itoa(len(res.Body)))
	}

	w.WriteHeader(statusCode(res.Status))

	if len(res.Body) > 0 {
		if _, err := w.Write(res.Body); err != nil {
			log.Printf("error writing body: %v", err)
		}
	}
}

// statusCode extracts the numeric code from a "<code> <reason>" status
// line, falling back to 500 for anything unparseable.
func statusCode(status string) int {
	code, err := strconv.Atoi(strings.SplitN(status, " ", 2)[0])
	if err != nil || code < 100 || code > 599 {
		return http.StatusInternalServerError
	}
	return code
}

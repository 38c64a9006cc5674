// Package framework ties the route table, middleware chain, static
// resolver and template engine together into the per-request dispatcher.
package framework

import (
	"fmt"

	"github.com/Icarus-313/Poridhi-Framework/app/middleware"
	"github.com/Icarus-313/Poridhi-Framework/app/router"
	"github.com/Icarus-313/Poridhi-Framework/app/static"
	"github.com/Icarus-313/Poridhi-Framework/app/template"
	"github.com/Icarus-313/Poridhi-Framework/app/types"
)

// Fixed fallback bodies. Failure bodies embed the error message
// verbatim and unescaped, matching the observed upstream behavior;
// DESIGN.md flags the reflected-content risk this carries.
const (
	notFoundBody       = "<h1>404 - Page Not Found</h1>"
	staticNotFoundBody = "<h1>404 Not Found</h1><p>Static file not found.</p>"
)

// App is the dispatcher. Configure it fully at startup (routes,
// middleware, static dir, template dir), then hand it to a host; the
// route table and chain are read-only while serving, so concurrent
// calls need no locking.
type App struct {
	router    *router.Router
	chain     *middleware.Chain
	static    *static.Handler
	templates *template.Engine
}

func New() *App {
	return &App{
		router:    router.New(),
		chain:     &middleware.Chain{},
		templates: template.NewEngine("templates"),
	}
}

// Route registers handler for path; methods defaults to GET.
func (a *App) Route(path string, handler types.Handler, methods ...types.Method) {
	a.router.Register(path, handler, methods...)
}

// Use appends mw to the middleware chain.
func (a *App) Use(mw types.Middleware) {
	a.chain.Add(mw)
}

// ServeStatic enables static-file serving from root for URL paths under
// prefix ("/static/" when empty).
func (a *App) ServeStatic(root, prefix string) {
	a.static = static.New(root, prefix)
}

// Templates points the template engine at dir.
func (a *App) Templates(dir string) {
	a.templates = template.NewEngine(dir)
}

// Render renders one template file with ctx.
func (a *App) Render(name string, ctx map[string]any) string {
	return a.templates.Render(name, ctx)
}

// RenderTemplate renders the named template and wraps the result in
// base.html, carrying the page title through.
func (a *App) RenderTemplate(name string, ctx map[string]any) string {
	content := a.templates.Render(name, ctx)

	title, ok := ctx["title"]
	if !ok {
		title = "My Framework"
	}
	return a.templates.Render("base.html", map[string]any{
		"title":   title,
		"content": content,
	})
}

// Dispatch processes one request end to end: before hooks, static
// short-circuit, route lookup, handler, normalization, after hooks.
// Every failure inside that pipeline is contained here and becomes a
// 500 reply; exactly one response comes back for every request.
func (a *App) Dispatch(req *types.Request) *types.Response {
	if err := capture(func() error { return a.chain.Before(req) }); err != nil {
		return errorResponse(err)
	}

	if a.static != nil && a.static.Matches(req.Path()) {
		return a.serveStatic(req.Path())
	}

	handler, ok := a.router.Resolve(req.Path(), req.Method())
	if !ok {
		return notFound()
	}

	var body types.Body
	err := capture(func() error {
		var herr error
		body, herr = handler(req)
		return herr
	})
	if err != nil {
		return errorResponse(err)
	}
	res := normalize(body)

	err = capture(func() error {
		var aerr error
		res, aerr = a.chain.After(req, res)
		return aerr
	})
	if err != nil {
		return errorResponse(err)
	}
	return res
}

func (a *App) serveStatic(path string) *types.Response {
	data, mimeType, err := a.static.Serve(path)
	if err != nil {
		res := types.NewResponse()
		res.Status = types.StatusNotFound
		res.SetBodyString(staticNotFoundBody)
		return res
	}

	res := types.NewResponse()
	res.Headers = []types.Header{{Name: "Content-Type", Value: mimeType}}
	res.Body = data
	return res
}

// normalize converts a handler's result variant into a Response: text
// and raw bytes get the default 200 text/html shape, a full Response
// passes through untouched.
func normalize(body types.Body) *types.Response {
	switch v := body.(type) {
	case *types.Response:
		if v != nil {
			return v
		}
	case types.Text:
		res := types.NewResponse()
		res.Body = []byte(v)
		return res
	case types.Raw:
		res := types.NewResponse()
		res.Body = []byte(v)
		return res
	}
	return types.NewResponse()
}

func notFound() *types.Response {
	res := types.NewResponse()
	res.Status = types.StatusNotFound
	res.SetBodyString(notFoundBody)
	return res
}

func errorResponse(err error) *types.Response {
	res := types.NewResponse()
	res.Status = types.StatusInternalServerError
	res.SetBodyString("<h1>Error:</h1><p>" + err.Error() + "</p>")
	return res
}

// capture runs fn and converts a panic into an error, so no failure in
// handlers or hooks can escape the dispatcher.
func capture(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return fn()
}

package router

import (
	"github.com/Icarus-313/Poridhi-Framework/app/types"
)

// binding ties a handler to the set of methods it answers for one path.
type binding struct {
	methods map[types.Method]struct{}
	handler types.Handler
}

// Router is the startup-built route table. Paths match by exact string
// equality, no patterns and no trailing-slash normalization. The table
// is populated during configuration and read-only while serving, so
// lookups need no locking.
type Router struct {
	routes map[string][]binding
}

func New() *Router {
	return &Router{routes: make(map[string][]binding)}
}

// Register binds handler to path for the given methods (GET when none
// are given). Registering the same path with an identical method set
// overwrites the previous handler; a different method set for the same
// path adds a second binding.
func (r *Router) Register(path string, handler types.Handler, methods ...types.Method) {
	if handler == nil {
		panic("router: nil handler passed to Register")
	}
	if len(methods) == 0 {
		methods = []types.Method{types.Get}
	}

	set := make(map[types.Method]struct{}, len(methods))
	for _, m := range methods {
		set[m] = struct{}{}
	}

	for i, b := range r.routes[path] {
		if sameMethods(b.methods, set) {
			r.routes[path][i].handler = handler
			return
		}
	}
	r.routes[path] = append(r.routes[path], binding{methods: set, handler: handler})
}

// Resolve returns the handler bound to (path, method). A path that is
// registered but not for this method resolves the same as an unknown
// path.
func (r *Router) Resolve(path string, method types.Method) (types.Handler, bool) {
	for _, b := range r.routes[path] {
		if _, ok := b.methods[method]; ok {
			return b.handler, true
		}
	}
	return nil, false
}

func sameMethods(a, b map[types.Method]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for m := range a {
		if _, ok := b[m]; !ok {
			return false
		}
	}
	return true
}

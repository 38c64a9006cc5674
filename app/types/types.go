package types

import (
	"encoding/json"
	"net/url"
)

type Method string

const (
	Get    Method = "GET"
	Post   Method = "POST"
	Put    Method = "PUT"
	Patch  Method = "PATCH"
	Delete Method = "DELETE"
)

// Status lines carried by Response, "<code> <reason>".
const (
	StatusOK                  = "200 OK"
	StatusCreated             = "201 Created"
	StatusBadRequest          = "400 Bad Request"
	StatusNotFound            = "404 Not Found"
	StatusInternalServerError = "500 Internal Server Error"
)

// Request is an immutable view over one inbound call: method, path and
// parsed query parameters. A fresh Request is built per call, so the
// metadata bag is safe for middleware to write to (timing and the like)
// without any cross-call sharing.
type Request struct {
	method Method
	path   string
	params url.Values
	meta   map[string]any
}

// NewRequest parses rawQuery and builds the per-call request view.
// Malformed query pairs are dropped rather than failing the call.
func NewRequest(method Method, path, rawQuery string) *Request {
	params, _ := url.ParseQuery(rawQuery)
	return &Request{
		method: method,
		path:   path,
		params: params,
		meta:   make(map[string]any),
	}
}

func (r *Request) Method() Method { return r.method }

func (r *Request) Path() string { return r.path }

// Param returns the first value bound to key, or "" when absent.
func (r *Request) Param(key string) string {
	return r.params.Get(key)
}

// ParamDefault returns the first value bound to key, or def when absent.
func (r *Request) ParamDefault(key, def string) string {
	if !r.HasParam(key) {
		return def
	}
	return r.params.Get(key)
}

// Params returns every value bound to key, in query order.
func (r *Request) Params(key string) []string {
	return r.params[key]
}

func (r *Request) HasParam(key string) bool {
	_, ok := r.params[key]
	return ok
}

// ParamMap flattens the query parameters: single-valued keys map to the
// scalar string, multi-valued keys keep the full value sequence.
func (r *Request) ParamMap() map[string]any {
	out := make(map[string]any, len(r.params))
	for key, values := range r.params {
		if len(values) == 1 {
			out[key] = values[0]
			continue
		}
		out[key] = values
	}
	return out
}

// Set stores per-call metadata on the request. Middleware uses this to
// pass state (e.g. a start time) to its after hook.
func (r *Request) Set(key string, value any) {
	r.meta[key] = value
}

// Value returns metadata stored by Set, or nil.
func (r *Request) Value(key string) any {
	return r.meta[key]
}

// Header is one name/value pair. Response headers are an ordered list
// and duplicates are allowed.
type Header struct {
	Name  string
	Value string
}

// Response is the mutable reply under construction: a status line,
// ordered headers and a byte body. Handlers may build one directly or
// let the dispatcher wrap their return value in the default shape.
type Response struct {
	Status  string
	Headers []Header
	Body    []byte
}

// NewResponse returns the default response: 200 OK, text/html, empty body.
func NewResponse() *Response {
	return &Response{
		Status:  StatusOK,
		Headers: []Header{{Name: "Content-Type", Value: "text/html"}},
	}
}

// SetHeader replaces the first header named name, appending if none exists.
func (r *Response) SetHeader(name, value string) {
	for i := range r.Headers {
		if r.Headers[i].Name == name {
			r.Headers[i].Value = value
			return
		}
	}
	r.Headers = append(r.Headers, Header{Name: name, Value: value})
}

// AddHeader appends a header pair, keeping any existing pairs with the
// same name.
func (r *Response) AddHeader(name, value string) {
	r.Headers = append(r.Headers, Header{Name: name, Value: value})
}

// HeaderValue returns the first value of the named header.
func (r *Response) HeaderValue(name string) (string, bool) {
	for _, h := range r.Headers {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}

// SetBodyString sets the body to the UTF-8 bytes of s.
func (r *Response) SetBodyString(s string) {
	r.Body = []byte(s)
}

// JSON serializes v into the body and resets the header list to a lone
// Content-Type: application/json pair.
func (r *Response) JSON(v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.Headers = []Header{{Name: "Content-Type", Value: "application/json"}}
	r.Body = body
	return nil
}

// Body is what a Handler returns: plain text, raw bytes, or a full
// Response. The dispatcher normalizes all three into a Response.
type Body interface {
	body()
}

// Text is a string result, wrapped into a default 200 text/html response.
type Text string

func (Text) body() {}

// Raw is a byte result, used directly as the response body.
type Raw []byte

func (Raw) body() {}

func (*Response) body() {}

// Handler processes one request. A returned error becomes a 500 reply.
type Handler func(req *Request) (Body, error)

// Middleware hooks run around dispatch: Before hooks in registration
// order on the way in, After hooks in reverse order on the way out.
// Either hook failing aborts the chain and yields a 500 reply.
type Middleware interface {
	Before(req *Request) error
	After(req *Request, res *Response) (*Response, error)
}

// Hooks adapts plain functions to Middleware. Nil fields are no-ops, so
// a middleware may supply only the hook it needs.
type Hooks struct {
	BeforeFunc func(req *Request) error
	AfterFunc  func(req *Request, res *Response) (*Response, error)
}

func (h Hooks) Before(req *Request) error {
	if h.BeforeFunc == nil {
		return nil
	}
	return h.BeforeFunc(req)
}

func (h Hooks) After(req *Request, res *Response) (*Response, error) {
	if h.AfterFunc == nil {
		return res, nil
	}
	return h.AfterFunc(req, res)
}

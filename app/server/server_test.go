package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Icarus-313/Poridhi-Framework/app/framework"
	"github.com/Icarus-313/Poridhi-Framework/app/middleware"
	"github.com/Icarus-313/Poridhi-Framework/app/types"
)

func newTestApp() *framework.App {
	app := framework.New()
	app.Route("/hello", func(req *types.Request) (types.Body, error) {
		return types.Text("Hello, " + req.ParamDefault("name", "World") + "!"), nil
	})
	app.Route("/api", func(req *types.Request) (types.Body, error) {
		res := types.NewResponse()
		if err := res.JSON(map[string]any{"path": req.Path()}); err != nil {
			return nil, err
		}
		return res, nil
	})
	app.Route("/cookies", func(req *types.Request) (types.Body, error) {
		res := types.NewResponse()
		res.AddHeader("Set-Cookie", "a=1")
		res.AddHeader("Set-Cookie", "b=2")
		res.SetBodyString("ok")
		return res, nil
	})
	return app
}

func TestServeHTTP(t *testing.T) {
	ts := httptest.NewServer(New(":0", newTestApp()))
	defer ts.Close()

	tests := []struct {
		name     string
		url      string
		wantCode int
		wantBody string
		wantCT   string
	}{
		{
			name:     "routed request with query",
			url:      "/hello?name=John",
			wantCode: http.StatusOK,
			wantBody: "Hello, John!",
			wantCT:   "text/html",
		},
		{
			name:     "default query value",
			url:      "/hello",
			wantCode: http.StatusOK,
			wantBody: "Hello, World!",
			wantCT:   "text/html",
		},
		{
			name:     "json route",
			url:      "/api",
			wantCode: http.StatusOK,
			wantBody: `{"path":"/api"}`,
			wantCT:   "application/json",
		},
		{
			name:     "unknown route",
			url:      "/missing",
			wantCode: http.StatusNotFound,
			wantBody: "<h1>404 - Page Not Found</h1>",
			wantCT:   "text/html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.url)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Equal(t, tt.wantBody, string(body))
			assert.Equal(t, tt.wantCT, resp.Header.Get("Content-Type"))
		})
	}
}

func TestDuplicateHeadersSurvive(t *testing.T) {
	ts := httptest.NewServer(New(":0", newTestApp()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/cookies")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, []string{"a=1", "b=2"}, resp.Header.Values("Set-Cookie"))
}

func TestMiddlewareHeadersReachTheWire(t *testing.T) {
	app := newTestApp()
	app.Use(middleware.Security{})

	ts := httptest.NewServer(New(":0", app))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/hello")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
}

func TestMethodRouting(t *testing.T) {
	app := framework.New()
	app.Route("/submit", func(req *types.Request) (types.Body, error) {
		return types.Text("submitted"), nil
	}, types.Post)

	ts := httptest.NewServer(New(":0", app))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/submit")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "GET on a POST-only route is not-found")

	resp, err = http.Post(ts.URL+"/submit", "text/plain", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{types.StatusOK, 200},
		{types.StatusCreated, 201},
		{types.StatusNotFound, 404},
		{types.StatusInternalServerError, 500},
		{"garbage", 500},
		{"", 500},
		{"42 Weird", 500},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusCode(tt.status), "status %q", tt.status)
	}
}

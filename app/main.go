package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Icarus-313/Poridhi-Framework/app/config"
	"github.com/Icarus-313/Poridhi-Framework/app/framework"
	"github.com/Icarus-313/Poridhi-Framework/app/middleware"
	"github.com/Icarus-313/Poridhi-Framework/app/server"
	"github.com/Icarus-313/Poridhi-Framework/app/types"
)

func main() {
	cfg, err := config.Load("poridhi.yaml")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := writeDefaultAssets(cfg); err != nil {
		log.Fatalf("assets: %v", err)
	}

	app := framework.New()
	app.Use(middleware.Logging{})
	app.Use(middleware.Security{})
	app.ServeStatic(cfg.StaticDir, cfg.StaticPrefix)
	app.Templates(cfg.TemplateDir)

	app.Route("/", home)
	app.Route("/user", userInfo)
	app.Route("/api/data", apiData, types.Get, types.Post)
	app.Route("/slow", slowPage)
	app.Route("/users", usersPage(app))

	srv := server.New(cfg.Addr, app)
	log.Printf("Poridhi framework running on http://localhost%s", cfg.Addr)
	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}

func home(req *types.Request) (types.Body, error) {
	return types.Text(fmt.Sprintf(`
    <h1>Welcome to the Poridhi Framework!</h1>
    <p>Request method: %s</p>
    <p>Request path: %s</p>
    <p>Try: <a href="/user?name=John&age=25">/user?name=John&age=25</a></p>
    <p>Or: <a href="/api/data">/api/data</a> for JSON</p>
    `, req.Method(), req.Path())), nil
}

func userInfo(req *types.Request) (types.Body, error) {
	name := req.ParamDefault("name", "Anonymous")
	age := req.ParamDefault("age", "Unknown")

	return types.Text(fmt.Sprintf(`
    <h1>User Information</h1>
    <p>Name: %s</p>
    <p>Age: %s</p>
    <p><a href="/">Back to home</a></p>
    `, name, age)), nil
}

func apiData(req *types.Request) (types.Body, error) {
	res := types.NewResponse()
	err := res.JSON(map[string]any{
		"message": "Hello from our framework API!",
		"method":  req.Method(),
		"path":    req.Path(),
		"params":  req.ParamMap(),
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// slowPage simulates a slow operation so the logging middleware has
// something to time.
func slowPage(req *types.Request) (types.Body, error) {
	time.Sleep(2 * time.Second)
	return types.Text("<h1>Slow Page</h1><p>This took 2 seconds to load.</p>"), nil
}

func usersPage(app *framework.App) types.Handler {
	return func(req *types.Request) (types.Body, error) {
		users := []string{"Alice", "Bob", "Charlie"}
		return types.Text(app.RenderTemplate("users.html", map[string]any{
			"title":      "Users",
			"users":      users,
			"user_count": len(users),
		})), nil
	}
}

// writeDefaultAssets seeds the template and static directories so the
// demo works out of the box. Existing files are left alone.
func writeDefaultAssets(cfg config.Config) error {
	assets := map[string]string{
		filepath.Join(cfg.TemplateDir, "base.html"): `<!DOCTYPE html>
<html>
<head>
    <title>{{ title }}</title>
    <link rel="stylesheet" href="/static/style.css">
</head>
<body>
    <div class="nav">
        <a href="/">Home</a>
        <a href="/users">Users</a>
    </div>
    <div class="content">
        {{ content }}
    </div>
</body>
</html>`,
		filepath.Join(cfg.TemplateDir, "users.html"): `<h1>Our Users</h1>
<ul>
{% for user in users %}
    <li>{{ user }}</li>
{% endfor %}
</ul>
<p>Total: {{ user_count }} users</p>`,
		filepath.Join(cfg.StaticDir, "style.css"): `body { font-family: Arial, sans-serif; background: #f0f0f0; margin: 0; padding: 20px; }
.nav { background: #007bff; color: white; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
.nav a { color: white; margin-right: 20px; text-decoration: none; font-weight: bold; }
`,
	}

	for path, content := range assets {
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

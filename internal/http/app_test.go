package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"technostore/internal/http/handlers"
	"technostore/internal/repos"
	"technostore/internal/services"
)

// newTestApp mirrors the wiring in cmd/technostore/main.go against an
// in-memory database.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()

	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	authSvc := services.NewAuthService(services.DefaultDirectory())

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})

	app.Use(requestid.New())
	app.Use(handlers.MethodOverride())
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})
	app.Use(handlers.Authorize(authSvc, handlers.AccessRules))

	deps := handlers.NewDeps(db, authSvc)

	app.Get("/products", deps.ProductHandler.Index)
	app.Get("/products/new", deps.ProductHandler.NewForm)
	app.Post("/products", deps.ProductHandler.Create)
	app.Get("/products/edit/:id", deps.ProductHandler.EditForm)
	app.Put("/products/:id", deps.ProductHandler.Update)
	app.Delete("/products/:id", deps.ProductHandler.Delete)

	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", deps.AuthHandler.Login)
	app.Post("/logout", deps.AuthHandler.Logout)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	return app, db
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// fetchCSRF grabs a csrf token from the login form.
func fetchCSRF(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := cookieValue(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}

// loginAs authenticates against the fixed directory and returns the
// session and csrf cookies for follow-up requests.
func loginAs(t *testing.T, app *fiber.App, username, password string) (sid, csrfTok string) {
	t.Helper()
	csrfTok = fetchCSRF(t, app)

	form := url.Values{"csrf": {csrfTok}, "username": {username}, "password": {password}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login as %s: expected redirect, got %d", username, resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/products" {
		t.Fatalf("login as %s: expected redirect to /products, got %q", username, loc)
	}
	sid = cookieValue(resp, "sid")
	if sid == "" {
		t.Fatalf("login as %s: no session cookie", username)
	}
	return sid, csrfTok
}

func formReq(method, target string, form url.Values, sid, csrfTok string) *http.Request {
	form.Set("csrf", csrfTok)
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	return req
}

func productCount(t *testing.T, db *sqlx.DB) int {
	t.Helper()
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		t.Fatal(err)
	}
	return n
}

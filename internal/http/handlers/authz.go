package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"technostore/internal/domain"
	applog "technostore/internal/log"
	"technostore/internal/services"
)

// Rule gates one (method, path-prefix) slice of the surface. A nil
// Roles list with Public unset means any authenticated user qualifies.
type Rule struct {
	Method string // empty matches every verb
	Prefix string
	Public bool
	Roles  []string
}

// AccessRules is evaluated top to bottom, first match wins. The final
// catch-all requires authentication for anything not named above it.
var AccessRules = []Rule{
	{Prefix: "/static/", Public: true},
	{Method: fiber.MethodGet, Prefix: "/healthz", Public: true},
	{Method: fiber.MethodGet, Prefix: "/login", Public: true},
	{Method: fiber.MethodPost, Prefix: "/login", Public: true},
	{Method: fiber.MethodGet, Prefix: "/products", Roles: []string{"ADMIN", "MANAGER", "USER"}},
	{Method: fiber.MethodPost, Prefix: "/products", Roles: []string{"ADMIN"}},
	{Method: fiber.MethodPut, Prefix: "/products", Roles: []string{"ADMIN", "MANAGER"}},
	{Method: fiber.MethodDelete, Prefix: "/products", Roles: []string{"ADMIN"}},
	{Prefix: "/"},
}

func matchRule(rules []Rule, method, path string) *Rule {
	for i := range rules {
		r := &rules[i]
		if r.Method != "" && r.Method != method {
			continue
		}
		if strings.HasPrefix(path, r.Prefix) {
			return r
		}
	}
	return nil
}

// Authorize resolves the sid cookie and enforces AccessRules ahead of
// every handler. Anonymous requests to protected paths redirect to the
// login form; authenticated requests with the wrong role get 403.
func Authorize(auth *services.AuthService, rules []Rule) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var u *domain.User
		if sid := c.Cookies("sid"); sid != "" {
			u = auth.CurrentUser(sid)
		}
		if u != nil {
			c.Locals("user", u)
		}

		r := matchRule(rules, c.Method(), c.Path())
		if r == nil || r.Public {
			return c.Next()
		}
		if u == nil {
			return c.Redirect("/login")
		}
		if len(r.Roles) > 0 && !u.HasRole(r.Roles...) {
			applog.Security(c, "access.denied", map[string]any{"roles": u.Roles})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{
				"Message": "Access denied",
			})
		}
		return c.Next()
	}
}

// MethodOverride lets HTML forms reach PUT/DELETE routes through a
// hidden _method field on POST. Must run before Authorize so the rule
// table sees the effective verb.
func MethodOverride() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost {
			switch strings.ToUpper(c.FormValue("_method")) {
			case fiber.MethodPut:
				c.Method(fiber.MethodPut)
			case fiber.MethodDelete:
				c.Method(fiber.MethodDelete)
			}
		}
		return c.Next()
	}
}

package handlers

import "github.com/gofiber/fiber/v2"

// render injects the logged-in user, the csrf token and any pending
// flash message before handing off to the view engine.
func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	if kind, msg := popFlash(c); kind != "" {
		switch kind {
		case "success":
			data["Success"] = msg
		case "error":
			data["Error"] = msg
		}
	}
	return c.Render(tmpl, data)
}

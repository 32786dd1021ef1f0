package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"technostore/internal/domain"
	applog "technostore/internal/log"
	"technostore/internal/services"
	"technostore/internal/validate"
)

type ProductHandler struct {
	Catalog *services.ProductService
}

func productForm(c *fiber.Ctx) validate.ProductForm {
	return validate.ProductForm{
		ProductType: c.FormValue("productType"),
		Brand:       c.FormValue("brand"),
		Model:       c.FormValue("model"),
		Price:       c.FormValue("price"),
		Year:        c.FormValue("year"),
	}
}

func formOf(p *domain.Product) validate.ProductForm {
	return validate.ProductForm{
		ProductType: p.ProductType,
		Brand:       p.Brand,
		Model:       p.Model,
		Price:       trimFloat(p.Price),
		Year:        itoa(p.Year),
	}
}

// GET /products
func (h *ProductHandler) Index(c *fiber.Ctx) error {
	var (
		products []domain.Product
		err      error
	)
	typeFilter := c.Query("type")
	brandFilter := c.Query("brand")
	switch {
	case typeFilter != "" && domain.ValidType(typeFilter):
		products, err = h.Catalog.FindByProductType(typeFilter)
	case brandFilter != "":
		products, err = h.Catalog.FindByBrand(brandFilter)
	default:
		typeFilter, brandFilter = "", ""
		products, err = h.Catalog.FindAll()
	}
	if err != nil {
		return err
	}
	return render(c, "product-list", fiber.Map{
		"Products":    products,
		"Types":       domain.ProductTypes,
		"TypeFilter":  typeFilter,
		"BrandFilter": brandFilter,
	})
}

// GET /products/new
func (h *ProductHandler) NewForm(c *fiber.Ctx) error {
	return render(c, "product-form", fiber.Map{
		"Form":  validate.ProductForm{},
		"Types": domain.ProductTypes,
	})
}

// POST /products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	form := productForm(c)
	p, errs := validate.Product(form)
	if len(errs) > 0 {
		applog.Warn(c, "product.create.invalid", map[string]any{"fields": fieldNames(errs)})
		return render(c, "product-form", fiber.Map{
			"Form":   form,
			"Types":  domain.ProductTypes,
			"Errors": errs,
		})
	}

	// A new entity never carries a client-supplied id.
	p.ID = 0
	saved, err := h.Catalog.Save(p)
	if err != nil {
		return err
	}
	applog.Audit(c, "product.create", map[string]any{"id": saved.ID, "brand": saved.Brand, "model": saved.Model})
	setFlash(c, "success", "Product created")
	return c.Redirect("/products")
}

// GET /products/edit/:id
func (h *ProductHandler) EditForm(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		setFlash(c, "error", "Product not found")
		return c.Redirect("/products")
	}
	p, err := h.Catalog.FindByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		applog.Warn(c, "product.edit.missing", map[string]any{"id": id})
		setFlash(c, "error", "Product not found")
		return c.Redirect("/products")
	}
	return render(c, "product-edit", fiber.Map{
		"ID":    p.ID,
		"Form":  formOf(p),
		"Types": domain.ProductTypes,
	})
}

// PUT /products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		setFlash(c, "error", "Product does not exist")
		return c.Redirect("/products")
	}

	form := productForm(c)
	p, errs := validate.Product(form)
	if len(errs) > 0 {
		applog.Warn(c, "product.update.invalid", map[string]any{"id": id, "fields": fieldNames(errs)})
		return render(c, "product-edit", fiber.Map{
			"ID":     id,
			"Form":   form,
			"Types":  domain.ProductTypes,
			"Errors": errs,
		})
	}

	exists, err := h.Catalog.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		applog.Warn(c, "product.update.missing", map[string]any{"id": id})
		setFlash(c, "error", "Product does not exist")
		return c.Redirect("/products")
	}

	// The URL owns the identity; the form cannot retarget another row.
	p.ID = id
	if _, err := h.Catalog.Save(p); err != nil {
		return err
	}
	applog.Audit(c, "product.update", map[string]any{"id": id})
	setFlash(c, "success", "Product updated")
	return c.Redirect("/products")
}

// DELETE /products/:id — always resolves to a flash and a redirect,
// never a propagated error.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		setFlash(c, "error", "Could not delete product")
		return c.Redirect("/products")
	}
	if err := h.Catalog.DeleteByID(id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			applog.Warn(c, "product.delete.missing", map[string]any{"id": id})
		} else {
			applog.Error(c, "product.delete.fail", err, map[string]any{"id": id})
		}
		setFlash(c, "error", "Could not delete product")
		return c.Redirect("/products")
	}
	applog.Audit(c, "product.delete", map[string]any{"id": id})
	setFlash(c, "success", "Product deleted")
	return c.Redirect("/products")
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func fieldNames(errs []validate.FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

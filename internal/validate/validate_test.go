package validate_test

import (
	"testing"

	"technostore/internal/validate"
)

func fields(errs []validate.FieldError) map[string]string {
	m := make(map[string]string, len(errs))
	for _, e := range errs {
		m[e.Field] = e.Message
	}
	return m
}

func TestProductBindsValidForm(t *testing.T) {
	p, errs := validate.Product(validate.ProductForm{
		ProductType: "HEADPHONES",
		Brand:       " Bose ",
		Model:       "QC Ultra",
		Price:       "349.99",
		Year:        "2024",
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if p.Brand != "Bose" || p.Model != "QC Ultra" || p.Price != 349.99 || p.Year != 2024 {
		t.Fatalf("bad binding: %+v", p)
	}
	if p.ID != 0 {
		t.Fatalf("bound product must be transient, got id %d", p.ID)
	}
}

func TestProductRejectsBadForms(t *testing.T) {
	valid := validate.ProductForm{
		ProductType: "TABLET", Brand: "Apple", Model: "iPad Air", Price: "649", Year: "2024",
	}

	cases := []struct {
		name    string
		mutate  func(*validate.ProductForm)
		field   string
	}{
		{"missing type", func(f *validate.ProductForm) { f.ProductType = "" }, "productType"},
		{"unknown type", func(f *validate.ProductForm) { f.ProductType = "TOASTER" }, "productType"},
		{"blank brand", func(f *validate.ProductForm) { f.Brand = "   " }, "brand"},
		{"blank model", func(f *validate.ProductForm) { f.Model = "" }, "model"},
		{"missing price", func(f *validate.ProductForm) { f.Price = "" }, "price"},
		{"garbage price", func(f *validate.ProductForm) { f.Price = "cheap" }, "price"},
		{"zero price", func(f *validate.ProductForm) { f.Price = "0" }, "price"},
		{"negative price", func(f *validate.ProductForm) { f.Price = "-5" }, "price"},
		{"nan price", func(f *validate.ProductForm) { f.Price = "NaN" }, "price"},
		{"inf price", func(f *validate.ProductForm) { f.Price = "Inf" }, "price"},
		{"plus inf price", func(f *validate.ProductForm) { f.Price = "+Inf" }, "price"},
		{"minus inf price", func(f *validate.ProductForm) { f.Price = "-Inf" }, "price"},
		{"missing year", func(f *validate.ProductForm) { f.Year = "" }, "year"},
		{"garbage year", func(f *validate.ProductForm) { f.Year = "soon" }, "year"},
		{"ancient year", func(f *validate.ProductForm) { f.Year = "1492" }, "year"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := valid
			tc.mutate(&f)
			_, errs := validate.Product(f)
			if len(errs) == 0 {
				t.Fatal("expected a validation error")
			}
			if _, ok := fields(errs)[tc.field]; !ok {
				t.Fatalf("expected error on %q, got %v", tc.field, errs)
			}
		})
	}
}

func TestID(t *testing.T) {
	if id, ok := validate.ID("42"); !ok || id != 42 {
		t.Fatalf("expected 42, got %d %v", id, ok)
	}
	for _, bad := range []string{"", "0", "-1", "abc", "1.5"} {
		if _, ok := validate.ID(bad); ok {
			t.Fatalf("id %q should not validate", bad)
		}
	}
}

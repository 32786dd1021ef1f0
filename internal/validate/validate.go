package validate

import (
	"math"
	"strconv"
	"strings"
	"time"

	"technostore/internal/domain"
)

type FieldError struct {
	Field   string
	Message string
}

// ProductForm holds the raw form values as submitted, so a failed
// binding can re-render the form with exactly what the user typed.
type ProductForm struct {
	ProductType string
	Brand       string
	Model       string
	Price       string
	Year        string
}

// Product binds and validates a submitted form. The returned product is
// only meaningful when the error list is empty; its ID is always zero.
func Product(f ProductForm) (domain.Product, []FieldError) {
	var errs []FieldError
	var p domain.Product

	p.ProductType = strings.TrimSpace(f.ProductType)
	if p.ProductType == "" {
		errs = append(errs, FieldError{"productType", "Product type is required"})
	} else if !domain.ValidType(p.ProductType) {
		errs = append(errs, FieldError{"productType", "Unknown product type"})
	}

	p.Brand = strings.TrimSpace(f.Brand)
	if p.Brand == "" {
		errs = append(errs, FieldError{"brand", "Brand is required"})
	}

	p.Model = strings.TrimSpace(f.Model)
	if p.Model == "" {
		errs = append(errs, FieldError{"model", "Model is required"})
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	switch {
	case strings.TrimSpace(f.Price) == "":
		errs = append(errs, FieldError{"price", "Price is required"})
	// ParseFloat accepts NaN and Inf spellings without error
	case err != nil || math.IsNaN(price) || math.IsInf(price, 0):
		errs = append(errs, FieldError{"price", "Price must be a number"})
	case price <= 0:
		errs = append(errs, FieldError{"price", "Price must be positive"})
	default:
		p.Price = price
	}

	year, err := strconv.Atoi(strings.TrimSpace(f.Year))
	switch {
	case strings.TrimSpace(f.Year) == "":
		errs = append(errs, FieldError{"year", "Year is required"})
	case err != nil:
		errs = append(errs, FieldError{"year", "Year must be a number"})
	case year < 1900 || year > time.Now().Year()+1:
		errs = append(errs, FieldError{"year", "Year is out of range"})
	default:
		p.Year = year
	}

	return p, errs
}

// ID parses a positive numeric path id. Zero and garbage both fail.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

package domain

// Product is the catalog entity. ID is assigned by the store on first
// insert; a zero ID marks a transient (not yet persisted) product.
type Product struct {
	ID          int64   `db:"id"`
	ProductType string  `db:"product_type"`
	Brand       string  `db:"brand"`
	Model       string  `db:"model"`
	Price       float64 `db:"price"`
	Year        int     `db:"product_year"`
}

// ProductTypes is the closed set of catalog categories, in display order.
var ProductTypes = []string{
	"SMARTPHONE",
	"LAPTOP",
	"TABLET",
	"HEADPHONES",
	"SMARTWATCH",
}

func ValidType(s string) bool {
	for _, t := range ProductTypes {
		if s == t {
			return true
		}
	}
	return false
}

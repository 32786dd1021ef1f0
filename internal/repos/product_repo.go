package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"technostore/internal/domain"
)

// ErrNotFound marks an operation against an id with no matching row.
var ErrNotFound = errors.New("no such row")

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, product_type, brand, model, price, product_year`

func (r *ProductRepo) FindAll() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY id`)
	return out, err
}

// FindByID returns (nil, nil) when no row matches.
func (r *ProductRepo) FindByID(id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save inserts when the product has no id yet, otherwise updates the row
// matching it. The returned product always carries the persisted id.
func (r *ProductRepo) Save(p domain.Product) (domain.Product, error) {
	if p.ID == 0 {
		res, err := r.db.Exec(`
		  INSERT INTO products(product_type,brand,model,price,product_year)
		  VALUES(?,?,?,?,?)`,
			p.ProductType, p.Brand, p.Model, p.Price, p.Year)
		if err != nil {
			return p, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return p, err
		}
		p.ID = id
		return p, nil
	}

	_, err := r.db.Exec(`
	  UPDATE products
	  SET product_type=?, brand=?, model=?, price=?, product_year=?
	  WHERE id=?`,
		p.ProductType, p.Brand, p.Model, p.Price, p.Year, p.ID)
	return p, err
}

// DeleteByID removes the row in a single transaction so the existence
// check and the delete cannot interleave with a concurrent writer.
// Returns ErrNotFound when no row has that id.
func (r *ProductRepo) DeleteByID(id int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

func (r *ProductRepo) ExistsByID(id int64) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM products WHERE id=?`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProductRepo) Count() (int64, error) {
	var n int64
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products`)
	return n, err
}

func (r *ProductRepo) FindByType(productType string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+` FROM products WHERE product_type=? ORDER BY id`, productType)
	return out, err
}

// FindByBrand matches the full brand text, ignoring case. Not a prefix
// or substring search.
func (r *ProductRepo) FindByBrand(brand string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+` FROM products WHERE LOWER(brand)=LOWER(?) ORDER BY id`, brand)
	return out, err
}

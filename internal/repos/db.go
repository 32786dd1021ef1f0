package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the demo catalog if the table is empty (safe to run every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_type TEXT NOT NULL CHECK (product_type IN ('SMARTPHONE','LAPTOP','TABLET','HEADPHONES','SMARTWATCH')),
  brand TEXT NOT NULL,
  model TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price > 0),
  product_year INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_type  ON products(product_type);
CREATE INDEX IF NOT EXISTS idx_products_brand ON products(LOWER(brand));
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(product_type,brand,model,price,product_year) VALUES
	  ('SMARTPHONE','Samsung','Galaxy S24',899.00,2024),
	  ('SMARTPHONE','Apple','iPhone 15 Pro',1229.00,2023),
	  ('SMARTPHONE','Google','Pixel 8 Pro',1099.00,2023),
	  ('LAPTOP','Dell','XPS 15',1799.00,2023),
	  ('LAPTOP','Apple','MacBook Air M3',1299.00,2024),
	  ('LAPTOP','Lenovo','ThinkPad X1 Carbon',1649.00,2023),
	  ('LAPTOP','HP','Spectre x360',1449.00,2024),
	  ('TABLET','Apple','iPad Pro 13',1449.00,2024),
	  ('TABLET','Samsung','Galaxy Tab S9',929.00,2023),
	  ('TABLET','Microsoft','Surface Pro 9',1179.00,2022),
	  ('HEADPHONES','Apple','AirPods Max',579.00,2020),
	  ('HEADPHONES','Sony','WH-1000XM5',349.00,2022),
	  ('SMARTWATCH','Apple','Watch Ultra 2',899.00,2023),
	  ('SMARTWATCH','Garmin','Fenix 7',699.00,2022)`)

	return tx.Commit()
}

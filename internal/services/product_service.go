package services

import (
	"errors"
	"fmt"

	"technostore/internal/domain"
	applog "technostore/internal/log"
	"technostore/internal/repos"
)

// ErrProductNotFound is the domain "no such product" condition. Callers
// report it to the user and continue; any other error from this service
// is an infrastructure failure and should fail the request.
var ErrProductNotFound = errors.New("product not found")

// Prices above this are suspicious for consumer electronics; saving one
// logs a warning but is not blocked.
const priceAdvisoryThreshold = 50000

type ProductService struct {
	Products *repos.ProductRepo
}

func NewProductService(products *repos.ProductRepo) *ProductService {
	return &ProductService{Products: products}
}

func (s *ProductService) FindAll() ([]domain.Product, error) {
	applog.Info(nil, "product.list", nil)
	return s.Products.FindAll()
}

func (s *ProductService) FindByID(id int64) (*domain.Product, error) {
	applog.Info(nil, "product.get", map[string]any{"id": id})
	return s.Products.FindByID(id)
}

func (s *ProductService) Save(p domain.Product) (domain.Product, error) {
	if p.Price > priceAdvisoryThreshold {
		applog.Warn(nil, "product.price.high", map[string]any{
			"brand": p.Brand, "model": p.Model, "price": p.Price,
		})
	}
	return s.Products.Save(p)
}

func (s *ProductService) DeleteByID(id int64) error {
	ok, err := s.Products.ExistsByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	if err := s.Products.DeleteByID(id); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrProductNotFound, id)
		}
		return err
	}
	return nil
}

func (s *ProductService) FindByProductType(productType string) ([]domain.Product, error) {
	applog.Info(nil, "product.list.type", map[string]any{"type": productType})
	return s.Products.FindByType(productType)
}

func (s *ProductService) FindByBrand(brand string) ([]domain.Product, error) {
	applog.Info(nil, "product.list.brand", map[string]any{"brand": brand})
	return s.Products.FindByBrand(brand)
}

func (s *ProductService) ExistsByID(id int64) (bool, error) {
	return s.Products.ExistsByID(id)
}

func (s *ProductService) Count() (int64, error) {
	return s.Products.Count()
}

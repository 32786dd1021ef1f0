package handlers

import (
	"github.com/jmoiron/sqlx"

	"technostore/internal/repos"
	"technostore/internal/services"
)

type Deps struct {
	ProductHandler *ProductHandler
	AuthHandler    *AuthHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService) *Deps {
	prodRepo := repos.NewProductRepo(db)
	catalogSvc := services.NewProductService(prodRepo)

	return &Deps{
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		AuthHandler:    &AuthHandler{Auth: auth},
	}
}

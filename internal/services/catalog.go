package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/solemate/solemate-backend/internal/data/repos"
	"github.com/solemate/solemate-backend/internal/domain"
	"github.com/solemate/solemate-backend/internal/pkg/dbctx"
	"github.com/solemate/solemate-backend/internal/pkg/logger"
)

// ProductInput carries the writable product fields for create/update.
type ProductInput struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
}

type CatalogService interface {
	GetAllProducts(dbc dbctx.Context) ([]*domain.Product, error)
	// GetProductByID fails with ProductNotFoundError when the id is absent.
	GetProductByID(dbc dbctx.Context, id uint) (*domain.Product, error)
	// SearchProducts narrows the catalog by the supplied filters, applied
	// sequentially: brand and category match case-insensitively on
	// equality, name/size/color on substring. Unknown keys are ignored.
	SearchProducts(dbc dbctx.Context, filters map[string]string) ([]*domain.Product, error)
	CreateProduct(dbc dbctx.Context, input ProductInput) (*domain.Product, error)
	// UpdateProduct merges the full input into the stored record and
	// re-validates before persisting.
	UpdateProduct(dbc dbctx.Context, id uint, input ProductInput) (*domain.Product, error)
	DeleteProduct(dbc dbctx.Context, id uint) error
}

type catalogService struct {
	db       *gorm.DB
	log      *logger.Logger
	products repos.ProductRepo
}

func NewCatalogService(db *gorm.DB, baseLog *logger.Logger, productRepo repos.ProductRepo) CatalogService {
	return &catalogService{
		db:       db,
		log:      baseLog.With("service", "CatalogService"),
		products: productRepo,
	}
}

func (s *catalogService) GetAllProducts(dbc dbctx.Context) ([]*domain.Product, error) {
	return s.products.GetAll(dbc)
}

func (s *catalogService) GetProductByID(dbc dbctx.Context, id uint) (*domain.Product, error) {
	p, err := s.products.GetByID(dbc, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &domain.ProductNotFoundError{ProductID: id}
	}
	return p, nil
}

func (s *catalogService) SearchProducts(dbc dbctx.Context, filters map[string]string) ([]*domain.Product, error) {
	products, err := s.products.GetAll(dbc)
	if err != nil {
		return nil, err
	}
	for key, value := range filters {
		switch key {
		case "brand":
			products = keep(products, func(p *domain.Product) bool {
				return strings.EqualFold(p.Brand, value)
			})
		case "category":
			products = keep(products, func(p *domain.Product) bool {
				return strings.EqualFold(p.Category, value)
			})
		case "name":
			products = keep(products, func(p *domain.Product) bool {
				return containsFold(p.Name, value)
			})
		case "size":
			products = keep(products, func(p *domain.Product) bool {
				return containsFold(p.Size, value)
			})
		case "color":
			products = keep(products, func(p *domain.Product) bool {
				return containsFold(p.Color, value)
			})
		}
	}
	return products, nil
}

func keep(in []*domain.Product, pred func(*domain.Product) bool) []*domain.Product {
	out := in[:0:0]
	for _, p := range in {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (s *catalogService) CreateProduct(dbc dbctx.Context, input ProductInput) (*domain.Product, error) {
	p, err := domain.NewProduct(input.Name, input.Brand, input.Category, input.Size, input.Color, input.Price, input.Stock, input.Description)
	if err != nil {
		return nil, err
	}
	saved, err := s.products.Save(dbc, p)
	if err != nil {
		return nil, err
	}
	s.log.Info("Product created", "product_id", saved.ID, "name", saved.Name)
	return saved, nil
}

func (s *catalogService) UpdateProduct(dbc dbctx.Context, id uint, input ProductInput) (*domain.Product, error) {
	p, err := s.products.GetByID(dbc, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &domain.ProductNotFoundError{ProductID: id}
	}

	p.Name = input.Name
	p.Brand = input.Brand
	p.Category = input.Category
	p.Size = input.Size
	p.Color = input.Color
	p.Price = input.Price
	p.Stock = input.Stock
	p.Description = input.Description
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return s.products.Save(dbc, p)
}

func (s *catalogService) DeleteProduct(dbc dbctx.Context, id uint) error {
	existed, err := s.products.Delete(dbc, id)
	if err != nil {
		return err
	}
	if !existed {
		return &domain.ProductNotFoundError{ProductID: id}
	}
	s.log.Info("Product deleted", "product_id", id)
	return nil
}

package catalog

import (
	"errors"

	"gorm.io/gorm"

	"github.com/solemate/solemate-backend/internal/domain"
	"github.com/solemate/solemate-backend/internal/pkg/dbctx"
	"github.com/solemate/solemate-backend/internal/pkg/logger"
)

type ProductRepo interface {
	GetAll(dbc dbctx.Context) ([]*domain.Product, error)
	// GetByID returns (nil, nil) when the id does not exist.
	GetByID(dbc dbctx.Context, id uint) (*domain.Product, error)
	GetByBrand(dbc dbctx.Context, brand string) ([]*domain.Product, error)
	GetByCategory(dbc dbctx.Context, category string) ([]*domain.Product, error)
	// Save inserts when the id is zero, updates otherwise, and returns the
	// stored row with its id assigned.
	Save(dbc dbctx.Context, product *domain.Product) (*domain.Product, error)
	// Delete reports whether a row existed.
	Delete(dbc dbctx.Context, id uint) (bool, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, log *logger.Logger) ProductRepo {
	return &productRepo{db: db, log: log.With("repo", "ProductRepo")}
}

func (r *productRepo) conn(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *productRepo) GetAll(dbc dbctx.Context) ([]*domain.Product, error) {
	var out []*domain.Product
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) GetByID(dbc dbctx.Context, id uint) (*domain.Product, error) {
	var p domain.Product
	err := r.conn(dbc).WithContext(dbc.Ctx).
		Where("id = ?", id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) GetByBrand(dbc dbctx.Context, brand string) ([]*domain.Product, error) {
	var out []*domain.Product
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Where("brand = ?", brand).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) GetByCategory(dbc dbctx.Context, category string) ([]*domain.Product, error) {
	var out []*domain.Product
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Where("category = ?", category).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Save(dbc dbctx.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.conn(dbc).WithContext(dbc.Ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) Delete(dbc dbctx.Context, id uint) (bool, error) {
	res := r.conn(dbc).WithContext(dbc.Ctx).
		Where("id = ?", id).
		Delete(&domain.Product{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

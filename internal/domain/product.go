package domain

import (
	"fmt"
	"strings"
)

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null;column:name" json:"name"`
	Brand       string  `gorm:"column:brand;index" json:"brand"`
	Category    string  `gorm:"column:category;index" json:"category"`
	Size        string  `gorm:"column:size" json:"size"`
	Color       string  `gorm:"column:color" json:"color"`
	Price       float64 `gorm:"not null;column:price" json:"price"`
	Stock       int     `gorm:"not null;column:stock" json:"stock"`
	Description string  `gorm:"type:text;column:description" json:"description"`
}

func (Product) TableName() string { return "products" }

// NewProduct validates and builds an unpersisted product (zero ID).
func NewProduct(name, brand, category, size, color string, price float64, stock int, description string) (*Product, error) {
	p := &Product{
		Name:        name,
		Brand:       brand,
		Category:    category,
		Size:        size,
		Color:       color,
		Price:       price,
		Stock:       stock,
		Description: description,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate enforces the catalog invariants. Called at construction and
// again before persisting an update.
func (p *Product) Validate() error {
	if p.Price <= 0 {
		return &ValidationError{Reason: "price must be greater than 0"}
	}
	if p.Stock < 0 {
		return &ValidationError{Reason: "stock cannot be negative"}
	}
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Reason: "name cannot be empty"}
	}
	return nil
}

func (p *Product) IsAvailable() bool { return p.Stock > 0 }

func (p *Product) ReduceStock(quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Reason: "quantity to reduce must be positive"}
	}
	if quantity > p.Stock {
		return &ValidationError{Reason: fmt.Sprintf("not enough stock to reduce by %d", quantity)}
	}
	p.Stock -= quantity
	return nil
}

func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Reason: "quantity to increase must be positive"}
	}
	p.Stock += quantity
	return nil
}

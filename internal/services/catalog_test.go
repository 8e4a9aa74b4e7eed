package services

import (
	"context"
	"errors"
	"testing"

	"github.com/solemate/solemate-backend/internal/data/repos"
	"github.com/solemate/solemate-backend/internal/data/repos/testutil"
	"github.com/solemate/solemate-backend/internal/pkg/dbctx"
	errs "github.com/solemate/solemate-backend/internal/pkg/errors"
	"gorm.io/gorm"
)

func newCatalogFixture(t *testing.T) (CatalogService, dbctx.Context, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := NewCatalogService(db, log, repos.NewProductRepo(db, log))
	return svc, dbctx.Context{Ctx: context.Background()}, db
}

func TestCreateProductValidates(t *testing.T) {
	svc, dbc, _ := newCatalogFixture(t)

	cases := []struct {
		name    string
		input   ProductInput
		wantErr bool
	}{
		{name: "valid", input: ProductInput{Name: "Air Runner", Brand: "Nike", Price: 100, Stock: 5}, wantErr: false},
		{name: "zero_price", input: ProductInput{Name: "Air Runner", Price: 0, Stock: 5}, wantErr: true},
		{name: "negative_stock", input: ProductInput{Name: "Air Runner", Price: 100, Stock: -1}, wantErr: true},
		{name: "empty_name", input: ProductInput{Name: " ", Price: 100, Stock: 5}, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p, err := svc.CreateProduct(dbc, tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("CreateProduct err=%v, wantErr=%v", err, tc.wantErr)
			}
			if tc.wantErr {
				if !errors.Is(err, errs.ErrInvalidArgument) {
					t.Fatalf("want validation error, got %v", err)
				}
				return
			}
			if p.ID == 0 {
				t.Fatal("created product should carry an id")
			}
		})
	}
}

func TestGetProductByIDNotFound(t *testing.T) {
	svc, dbc, _ := newCatalogFixture(t)

	_, err := svc.GetProductByID(dbc, 999999)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want not-found error, got %v", err)
	}
}

func TestSearchProductsNarrowing(t *testing.T) {
	svc, dbc, db := newCatalogFixture(t)
	ctx := context.Background()

	testutil.SeedProduct(t, ctx, db, "Air Runner Rojo", "Nike", "Deportivo", 100, 5)
	testutil.SeedProduct(t, ctx, db, "Air Walker", "Nike", "Casual", 80, 3)
	testutil.SeedProduct(t, ctx, db, "Classic Cuero", "Adidas", "Casual", 90, 0)

	cases := []struct {
		name    string
		filters map[string]string
		want    int
	}{
		{name: "no_filters", filters: nil, want: 3},
		{name: "brand_case_insensitive", filters: map[string]string{"brand": "nike"}, want: 2},
		{name: "category", filters: map[string]string{"category": "casual"}, want: 2},
		{name: "brand_and_category", filters: map[string]string{"brand": "Nike", "category": "Casual"}, want: 1},
		{name: "name_substring", filters: map[string]string{"name": "air"}, want: 2},
		{name: "unknown_key_ignored", filters: map[string]string{"flavor": "mint"}, want: 3},
		{name: "no_match", filters: map[string]string{"brand": "Puma"}, want: 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.SearchProducts(dbc, tc.filters)
			if err != nil {
				t.Fatalf("SearchProducts: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("len=%d, want %d", len(got), tc.want)
			}
		})
	}
}

func TestUpdateProductRevalidates(t *testing.T) {
	svc, dbc, db := newCatalogFixture(t)
	p := testutil.SeedProduct(t, context.Background(), db, "Air Runner", "Nike", "Deportivo", 100, 5)

	updated, err := svc.UpdateProduct(dbc, p.ID, ProductInput{
		Name: "Air Runner v2", Brand: "Nike", Category: "Deportivo",
		Size: "43", Color: "Azul", Price: 120, Stock: 7, Description: "nueva edición",
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Name != "Air Runner v2" || updated.Price != 120 || updated.Stock != 7 {
		t.Fatalf("merge not applied: %+v", updated)
	}

	_, err = svc.UpdateProduct(dbc, p.ID, ProductInput{Name: "Air Runner v2", Price: -1, Stock: 7})
	if !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("invalid merge should fail validation, got %v", err)
	}

	// Failed update must not have persisted the bad price.
	got, err := svc.GetProductByID(dbc, p.ID)
	if err != nil {
		t.Fatalf("GetProductByID: %v", err)
	}
	if got.Price != 120 {
		t.Fatalf("bad update leaked: price=%v", got.Price)
	}

	_, err = svc.UpdateProduct(dbc, 424242, ProductInput{Name: "X", Price: 10})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("updating a missing product should be not-found, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	svc, dbc, db := newCatalogFixture(t)
	p := testutil.SeedProduct(t, context.Background(), db, "Air Runner", "Nike", "Deportivo", 100, 5)

	if err := svc.DeleteProduct(dbc, p.ID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if err := svc.DeleteProduct(dbc, p.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("second delete should be not-found, got %v", err)
	}
}

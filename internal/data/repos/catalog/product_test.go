package catalog

import (
	"context"
	"testing"

	"github.com/solemate/solemate-backend/internal/data/repos/testutil"
	"github.com/solemate/solemate-backend/internal/pkg/dbctx"
)

func TestSaveAssignsIDAndUpdatesInPlace(t *testing.T) {
	db := testutil.DB(t)
	repo := NewProductRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background()}

	p := testutil.SeedProduct(t, dbc.Ctx, db, "Air Runner", "Nike", "Deportivo", 100, 5)
	if p.ID == 0 {
		t.Fatal("expected id assigned on first save")
	}

	p.Stock = 3
	p.Price = 90
	if _, err := repo.Save(dbc, p); err != nil {
		t.Fatalf("Save update: %v", err)
	}

	got, err := repo.GetByID(dbc, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Stock != 3 || got.Price != 90 {
		t.Fatalf("update not persisted: %+v", got)
	}

	all, err := repo.GetAll(dbc)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("update must not create a second row, got %d", len(all))
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	repo := NewProductRepo(testutil.DB(t), testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background()}

	got, err := repo.GetByID(dbc, 999999)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("missing id should yield nil, got %+v", got)
	}
}

func TestBrandAndCategoryFiltersAreCaseSensitive(t *testing.T) {
	db := testutil.DB(t)
	repo := NewProductRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background()}

	testutil.SeedProduct(t, dbc.Ctx, db, "Air Runner", "Nike", "Deportivo", 100, 5)
	testutil.SeedProduct(t, dbc.Ctx, db, "Classic", "Adidas", "Casual", 80, 2)

	byBrand, err := repo.GetByBrand(dbc, "Nike")
	if err != nil {
		t.Fatalf("GetByBrand: %v", err)
	}
	if len(byBrand) != 1 || byBrand[0].Name != "Air Runner" {
		t.Fatalf("GetByBrand(Nike)=%+v", byBrand)
	}

	// Store-layer filters are exact; case folding belongs to the service.
	lower, err := repo.GetByBrand(dbc, "nike")
	if err != nil {
		t.Fatalf("GetByBrand lower: %v", err)
	}
	if len(lower) != 0 {
		t.Fatalf("store filter should be case-sensitive, got %+v", lower)
	}

	byCat, err := repo.GetByCategory(dbc, "Casual")
	if err != nil {
		t.Fatalf("GetByCategory: %v", err)
	}
	if len(byCat) != 1 || byCat[0].Brand != "Adidas" {
		t.Fatalf("GetByCategory(Casual)=%+v", byCat)
	}
}

func TestDeleteReportsExistence(t *testing.T) {
	db := testutil.DB(t)
	repo := NewProductRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background()}

	p := testutil.SeedProduct(t, dbc.Ctx, db, "Air Runner", "Nike", "Deportivo", 100, 5)

	ok, err := repo.Delete(dbc, p.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !ok {
		t.Fatal("delete of existing row should report true")
	}

	ok, err = repo.Delete(dbc, p.ID)
	if err != nil {
		t.Fatalf("Delete again: %v", err)
	}
	if ok {
		t.Fatal("delete of missing row should report false")
	}
}

package service

import (
	"fmt"
	"testing"

	"go-pos-backoffice/internal/model"
	"go-pos-backoffice/internal/repository"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Profile{},
		&model.Product{},
		&model.Customer{},
		&model.Supplier{},
		&model.Invoice{},
		&model.InvoiceItem{},
		&model.Expense{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newSales(db *gorm.DB) SalesService {
	return NewSalesService(
		repository.NewProductRepo(db),
		repository.NewCustomerRepo(db),
		repository.NewInvoiceRepo(db),
		db, nil,
	)
}

func newInventory(db *gorm.DB) InventoryService {
	return NewInventoryService(repository.NewProductRepo(db), db, nil)
}

func newRegistry(db *gorm.DB) RegistryService {
	return NewRegistryService(repository.NewCustomerRepo(db), repository.NewSupplierRepo(db), db)
}

func seedProduct(t *testing.T, db *gorm.DB, tenantID uuid.UUID, name string, sellPrice int64, stock int) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, SellPrice: sellPrice, BuyPrice: sellPrice / 2, Stock: stock}
	p.TenantID = tenantID
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func seedCustomer(t *testing.T, db *gorm.DB, tenantID uuid.UUID, name string) *model.Customer {
	t.Helper()
	c := &model.Customer{Name: name}
	c.TenantID = tenantID
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func loadProduct(t *testing.T, db *gorm.DB, id uuid.UUID) *model.Product {
	t.Helper()
	var p model.Product
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		t.Fatalf("load product: %v", err)
	}
	return &p
}

func loadCustomer(t *testing.T, db *gorm.DB, id uuid.UUID) *model.Customer {
	t.Helper()
	var c model.Customer
	if err := db.First(&c, "id = ?", id).Error; err != nil {
		t.Fatalf("load customer: %v", err)
	}
	return &c
}

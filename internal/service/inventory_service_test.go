package service

import (
	"testing"

	"go-pos-backoffice/internal/model"
	"go-pos-backoffice/pkg/apperr"

	"github.com/google/uuid"
)

func TestCreateProductValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newInventory(db)
	tenant := uuid.New()

	cases := []struct {
		name string
		req  model.Product
	}{
		{"missing name", model.Product{SellPrice: 100}},
		{"negative sell price", model.Product{Name: "X", SellPrice: -1}},
		{"negative buy price", model.Product{Name: "X", BuyPrice: -5}},
		{"negative stock", model.Product{Name: "X", Stock: -2}},
	}

	for _, tc := range cases {
		req := tc.req
		if err := svc.CreateProduct(tenant, &req); !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("%s: expected ValidationError got %v", tc.name, err)
		}
	}
}

func TestCreateProductStampsTenant(t *testing.T) {
	db := setupTestDB(t)
	svc := newInventory(db)
	tenant := uuid.New()

	req := model.Product{Name: "Milk", Barcode: "621000001", SellPrice: 1500, BuyPrice: 1100, Stock: 12}
	if err := svc.CreateProduct(tenant, &req); err != nil {
		t.Fatalf("create product: %v", err)
	}

	stored := loadProduct(t, db, req.ID)
	if stored.TenantID != tenant {
		t.Fatalf("expected tenant %s got %s", tenant, stored.TenantID)
	}
}

func TestAdjustStockGuardsNegative(t *testing.T) {
	db := setupTestDB(t)
	svc := newInventory(db)
	tenant := uuid.New()
	product := seedProduct(t, db, tenant, "Eggs", 400, 3)

	if _, err := svc.AdjustStock(tenant, product.ID, -4); !apperr.Is(err, apperr.KindInsufficientStock) {
		t.Fatalf("expected InsufficientStock got %v", err)
	}
	if got := loadProduct(t, db, product.ID).Stock; got != 3 {
		t.Fatalf("failed adjust changed stock: %d", got)
	}

	updated, err := svc.AdjustStock(tenant, product.ID, -3)
	if err != nil {
		t.Fatalf("adjust to zero: %v", err)
	}
	if updated.Stock != 0 {
		t.Fatalf("expected stock 0 got %d", updated.Stock)
	}

	updated, err = svc.AdjustStock(tenant, product.ID, 10)
	if err != nil {
		t.Fatalf("restock: %v", err)
	}
	if updated.Stock != 10 {
		t.Fatalf("expected stock 10 got %d", updated.Stock)
	}
}

func TestAdjustStockUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := newInventory(db)

	if _, err := svc.AdjustStock(uuid.New(), uuid.New(), 1); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected NotFound got %v", err)
	}
}

func TestDeleteProductReferencedByInvoice(t *testing.T) {
	db := setupTestDB(t)
	inv := newInventory(db)
	sales := newSales(db)
	tenant := uuid.New()
	product := seedProduct(t, db, tenant, "Cheese", 2000, 10)
	customer := seedCustomer(t, db, tenant, "Bnar")

	if _, err := sales.CreateInvoice(tenant, &CreateInvoiceRequest{
		CustomerID:    customer.ID,
		PaymentStatus: model.PaymentPaid,
		Items:         []InvoiceItemRequest{{ProductID: product.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	if err := inv.DeleteProduct(tenant, product.ID); !apperr.Is(err, apperr.KindReferentialConflict) {
		t.Fatalf("expected ReferentialConflict got %v", err)
	}

	unreferenced := seedProduct(t, db, tenant, "Butter", 1800, 4)
	if err := inv.DeleteProduct(tenant, unreferenced.ID); err != nil {
		t.Fatalf("delete unreferenced: %v", err)
	}
}

func TestProductsScopedToTenant(t *testing.T) {
	db := setupTestDB(t)
	svc := newInventory(db)
	tenantA := uuid.New()
	tenantB := uuid.New()

	seedProduct(t, db, tenantA, "A1", 100, 1)
	seedProduct(t, db, tenantA, "A2", 200, 2)
	seedProduct(t, db, tenantB, "B1", 300, 3)

	productsA, err := svc.GetProducts(tenantA)
	if err != nil {
		t.Fatalf("list tenant A: %v", err)
	}
	if len(productsA) != 2 {
		t.Fatalf("expected 2 products got %d", len(productsA))
	}

	// Tenant B cannot mutate A's rows even with a valid id.
	if _, err := svc.AdjustStock(tenantB, productsA[0].ID, -1); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected NotFound got %v", err)
	}
	if err := svc.DeleteProduct(tenantB, productsA[0].ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected NotFound got %v", err)
	}
}

func TestUpdateProductKeepsTenant(t *testing.T) {
	db := setupTestDB(t)
	svc := newInventory(db)
	tenant := uuid.New()
	product := seedProduct(t, db, tenant, "Jam", 1700, 6)

	updated, err := svc.UpdateProduct(tenant, product.ID, &model.Product{
		Name:      "Jam 500g",
		SellPrice: 1900,
		BuyPrice:  1400,
		Stock:     6,
	})
	if err != nil {
		t.Fatalf("update product: %v", err)
	}
	if updated.Name != "Jam 500g" || updated.SellPrice != 1900 {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.TenantID != tenant {
		t.Fatalf("tenant changed on update")
	}
}

package cartControllers

import (
	"math"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, price float64) models.Product {
	t.Helper()
	product := models.Product{
		ID:            uuid.NewString(),
		Slug:          "p-" + uuid.NewString()[:8],
		Name:          "Test Product",
		Price:         price,
		StockQuantity: 10,
		IsActive:      true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

func TestAddItemMergesDuplicates(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.NewString()
	product := seedProduct(t, db, 9.99)

	if _, err := AddItem(db, userID, product.ID, 1); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if _, err := AddItem(db, userID, product.ID, 1); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	items, err := ListItems(db, userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := newTestDB(t)

	_, err := AddItem(db, uuid.NewString(), uuid.NewString(), 1)
	if err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.NewString()
	product := seedProduct(t, db, 5.00)

	item, err := AddItem(db, userID, product.ID, 0)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if item.Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", item.Quantity)
	}
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.NewString()
	product := seedProduct(t, db, 5.00)

	item, err := AddItem(db, userID, product.ID, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := SetQuantity(db, userID, item.ID, 0); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}

	items, err := ListItems(db, userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected quantity 0 to remove the line, got %d lines", len(items))
	}
}

func TestSetQuantityUpdates(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.NewString()
	product := seedProduct(t, db, 5.00)

	item, err := AddItem(db, userID, product.ID, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := SetQuantity(db, userID, item.ID, 7); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}

	items, _ := ListItems(db, userID)
	if len(items) != 1 || items[0].Quantity != 7 {
		t.Errorf("expected one line with quantity 7, got %+v", items)
	}
}

func TestRemoveItemIdempotent(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.NewString()

	if err := RemoveItem(db, userID, uuid.NewString()); err != nil {
		t.Errorf("removing a missing item should not error, got %v", err)
	}
}

func TestClear(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.NewString()
	otherID := uuid.NewString()
	p1 := seedProduct(t, db, 5.00)
	p2 := seedProduct(t, db, 8.00)

	AddItem(db, userID, p1.ID, 1)
	AddItem(db, userID, p2.ID, 2)
	AddItem(db, otherID, p1.ID, 3)

	if err := Clear(db, userID); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	items, _ := ListItems(db, userID)
	if len(items) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(items))
	}

	// Other users' carts are untouched.
	otherItems, _ := ListItems(db, otherID)
	if len(otherItems) != 1 {
		t.Errorf("expected other user's cart intact, got %d lines", len(otherItems))
	}
}

func TestTotals(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.NewString()
	p1 := seedProduct(t, db, 19.99)
	p2 := seedProduct(t, db, 5.00)

	AddItem(db, userID, p1.ID, 2)
	AddItem(db, userID, p2.ID, 3)

	items, err := ListItems(db, userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if got := TotalPrice(items); math.Abs(got-54.98) > 1e-9 {
		t.Errorf("expected total price 54.98, got %.2f", got)
	}
	if got := TotalItemCount(items); got != 5 {
		t.Errorf("expected item count 5, got %d", got)
	}
}

func TestTotalsEmpty(t *testing.T) {
	if got := TotalPrice(nil); got != 0 {
		t.Errorf("expected 0 for empty cart, got %.2f", got)
	}
	if got := TotalItemCount(nil); got != 0 {
		t.Errorf("expected 0 for empty cart, got %d", got)
	}
}

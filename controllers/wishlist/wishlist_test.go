package wishlistControllers

import (
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
		&models.WishlistItem{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	product := models.Product{
		ID:       uuid.NewString(),
		Slug:     "p-" + uuid.NewString()[:8],
		Name:     "Test Product",
		Price:    15.00,
		IsActive: true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

func TestAddItemIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.NewString()
	product := seedProduct(t, db)

	if _, err := AddItem(db, userID, product.ID); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if _, err := AddItem(db, userID, product.ID); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	items, err := ListItems(db, userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected a single row per (user, product), got %d", len(items))
	}
}

func TestTogglePairRestoresMembership(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.NewString()
	product := seedProduct(t, db)

	wished, err := Toggle(db, userID, product.ID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !wished {
		t.Error("expected first toggle to add")
	}

	wished, err = Toggle(db, userID, product.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if wished {
		t.Error("expected second toggle to remove")
	}

	contains, err := Contains(db, userID, product.ID)
	if err != nil {
		t.Fatalf("contains failed: %v", err)
	}
	if contains {
		t.Error("expected membership back to its original state")
	}
}

func TestContains(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.NewString()
	product := seedProduct(t, db)
	other := seedProduct(t, db)

	if _, err := AddItem(db, userID, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	contains, err := Contains(db, userID, product.ID)
	if err != nil || !contains {
		t.Errorf("expected product in wishlist, got %v %v", contains, err)
	}

	contains, err = Contains(db, userID, other.ID)
	if err != nil || contains {
		t.Errorf("expected other product absent, got %v %v", contains, err)
	}
}

func TestRemoveItemIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := RemoveItem(db, uuid.NewString(), uuid.NewString()); err != nil {
		t.Errorf("removing a missing item should not error, got %v", err)
	}
}

func TestToggleUnknownProduct(t *testing.T) {
	db := newTestDB(t)

	_, err := Toggle(db, uuid.NewString(), uuid.NewString())
	if err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

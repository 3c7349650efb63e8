package orderControllers

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cartControllers "storefront/controllers/cart"
	"storefront/models"
)

type ShippingInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
}

type PaymentInput struct {
	CardNumber     string `json:"card_number"`
	ExpiryDate     string `json:"expiry_date"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholder_name"`
}

type CheckoutRequest struct {
	ShippingAddress ShippingInput `json:"shipping_address"`
	PaymentMethod   PaymentInput  `json:"payment_method"`
}

const (
	freeShippingThreshold = 50.0
	flatShippingCost      = 5.99
	taxRate               = 0.08
)

// paymentDelay stands in for a real payment gateway round-trip. No
// authorization or capture happens; only the card's last 4 digits are kept.
var paymentDelay = 2 * time.Second

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s().-]{10,}$`)
)

// validateCheckout checks required fields in a fixed order and reports the
// first failure.
func validateCheckout(req CheckoutRequest) error {
	shippingFields := []struct {
		name  string
		value string
	}{
		{"full_name", req.ShippingAddress.FullName},
		{"email", req.ShippingAddress.Email},
		{"phone", req.ShippingAddress.Phone},
		{"address", req.ShippingAddress.Address},
		{"city", req.ShippingAddress.City},
		{"state", req.ShippingAddress.State},
		{"zip_code", req.ShippingAddress.ZipCode},
	}
	for _, f := range shippingFields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}

	if !emailPattern.MatchString(req.ShippingAddress.Email) {
		return &ValidationError{Field: "email"}
	}
	if !phonePattern.MatchString(req.ShippingAddress.Phone) {
		return &ValidationError{Field: "phone"}
	}

	paymentFields := []struct {
		name  string
		value string
	}{
		{"card_number", req.PaymentMethod.CardNumber},
		{"expiry_date", req.PaymentMethod.ExpiryDate},
		{"cvv", req.PaymentMethod.CVV},
		{"cardholder_name", req.PaymentMethod.CardholderName},
	}
	for _, f := range paymentFields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}

	return nil
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals derives shipping, tax and grand total from the cart
// subtotal. Orders over the threshold ship free; tax is 8%, rounded to
// cents.
func ComputeTotals(subtotal float64) (shipping, tax, total float64) {
	shipping = flatShippingCost
	if subtotal > freeShippingThreshold {
		shipping = 0
	}
	tax = roundToCents(subtotal * taxRate)
	total = roundToCents(subtotal + shipping + tax)
	return shipping, tax, total
}

func newPaymentIntentID() string {
	return fmt.Sprintf("pi_%d_%09d", time.Now().UnixMilli(), rand.Intn(1_000_000_000))
}

func cardLast4(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// PlaceOrder turns the user's cart plus a validated checkout form into a
// persisted order.
//
// The steps are deliberately not one transaction: once the order row
// exists, the order is considered placed. A later failure inserting its
// items is reported to the caller (cart kept so they can retry), while
// stock decrement and cart clearing are best-effort and only logged.
func PlaceOrder(db *gorm.DB, userID string, req CheckoutRequest) (*models.Order, error) {
	items, err := cartControllers.ListItems(db, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderPlacementFailed, err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	subtotal := cartControllers.TotalPrice(items)
	_, _, total := ComputeTotals(subtotal)

	// Simulated payment processing; see DESIGN.md.
	time.Sleep(paymentDelay)

	order := models.Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		TotalAmount: total,
		Status:      models.OrderStatusPending,
		ShippingAddress: models.ShippingAddress{
			FullName: strings.TrimSpace(req.ShippingAddress.FullName),
			Email:    strings.TrimSpace(req.ShippingAddress.Email),
			Phone:    strings.TrimSpace(req.ShippingAddress.Phone),
			Address:  strings.TrimSpace(req.ShippingAddress.Address),
			City:     strings.TrimSpace(req.ShippingAddress.City),
			State:    strings.TrimSpace(req.ShippingAddress.State),
			ZipCode:  strings.TrimSpace(req.ShippingAddress.ZipCode),
			Country:  strings.TrimSpace(req.ShippingAddress.Country),
		},
		PaymentIntentID: newPaymentIntentID(),
		CardLast4:       cardLast4(req.PaymentMethod.CardNumber),
		CreatedAt:       time.Now(),
	}
	if err := db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderPlacementFailed, err)
	}

	// Snapshot the current product price, not the price at add-to-cart time.
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}
	if err := db.Create(&orderItems).Error; err != nil {
		// The order row stands; the cart is kept so the user can retry.
		log.Printf("❌ Order %s: failed to create order items: %v", order.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrOrderPlacementFailed, err)
	}
	order.Items = orderItems

	// Best-effort stock decrement. The guard keeps stock from going
	// negative; a miss is logged, never rolled back.
	for _, item := range orderItems {
		res := db.Model(&models.Product{}).
			Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
			UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
		if res.Error != nil {
			log.Printf("⚠️ Order %s: stock update failed for product %s: %v", order.ID, item.ProductID, res.Error)
		} else if res.RowsAffected == 0 {
			log.Printf("⚠️ Order %s: insufficient stock to decrement product %s by %d", order.ID, item.ProductID, item.Quantity)
		}
	}

	if err := cartControllers.Clear(db, userID); err != nil {
		log.Printf("⚠️ Order %s: failed to clear cart for user %s: %v", order.ID, userID, err)
	}

	return &order, nil
}

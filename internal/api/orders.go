package api

import (
	"math"     // Float tolerance for the total check
	"net/http" // HTTP status codes
	"strings"  // String manipulation
	"time"     // Timestamps in log fields

	"eprasadam/internal/domain"     // Importing domain models
	"eprasadam/internal/middleware" // Current user accessor
	"eprasadam/internal/payment"    // Payment provider abstraction

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Order code generation
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// paySuffix links a payment's external code to its order code
const paySuffix = "_PAY"

// totalTolerance absorbs float drift when comparing the submitted total
// against the line-item sum (half a paisa)
const totalTolerance = 0.005

// CreateOrderRequest represents an order placement request
type CreateOrderRequest struct {
	UserName    string             `json:"user_name"`    // Buyer name snapshot
	UserEmail   string             `json:"user_email"`   // Buyer email snapshot
	UserPhone   string             `json:"user_phone"`   // Buyer phone snapshot
	UserAddress string             `json:"user_address"` // Delivery address snapshot
	Items       []domain.OrderItem `json:"items"`        // Line items
	TotalAmount float64            `json:"total_amount"` // Claimed total
}

// VerifyPaymentRequest represents a payment verification request
type VerifyPaymentRequest struct {
	PaymentOrderID string `json:"payment_order_id"` // External payment order code
	PaymentID      string `json:"payment_id"`       // Optional provider payment id
	PaymentMethod  string `json:"payment_method"`   // Optional payment method
}

// validateItems checks that every line item is well-formed and that the
// claimed total matches the line-item sum
func validateItems(items []domain.OrderItem, total float64) string {
	if len(items) == 0 {
		return "items are required" // An order needs at least one line
	}
	sum := 0.0 // Running line-item total
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return "item name is required" // Blank item name
		}
		if it.Quantity < 1 {
			return "item quantity must be at least 1" // Zero or negative quantity
		}
		if it.Price < 0 {
			return "item price must not be negative" // Negative price
		}
		sum += float64(it.Quantity) * it.Price // Accumulate line total
	}
	if math.Abs(sum-total) > totalTolerance {
		return "total_amount does not match items" // Claimed total disagrees with lines
	}
	return "" // Valid
}

// CreateOrderHandler places an order and its companion pending payment
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Resolved by RequireAuth
		var req CreateOrderRequest        // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Invalid request")
			return
		}
		// Validate the snapshot fields
		required := []struct{ name, value string }{
			{"user_name", req.UserName},
			{"user_email", req.UserEmail},
			{"user_phone", req.UserPhone},
			{"user_address", req.UserAddress},
		}
		for _, f := range required {
			if strings.TrimSpace(f.value) == "" {
				fail(c, http.StatusBadRequest, f.name+" is required")
				return
			}
		}
		// Validate items and the claimed total
		if msg := validateItems(req.Items, req.TotalAmount); msg != "" {
			fail(c, http.StatusBadRequest, msg)
			return
		}
		// Generate the external 8-character uppercase order code
		orderCode := strings.ToUpper(uuid.NewString()[:8])
		order := domain.Order{
			OrderCode:   orderCode,                        // External order code
			UserID:      user.ID,                          // Owning user
			UserName:    req.UserName,                     // Snapshot at order time
			UserEmail:   req.UserEmail,                    // Snapshot at order time
			UserPhone:   req.UserPhone,                    // Snapshot at order time
			UserAddress: req.UserAddress,                  // Snapshot at order time
			Items:       req.Items,                        // Line items
			TotalAmount: req.TotalAmount,                  // Validated total
			Status:      domain.OrderStatusPaymentPending, // Awaiting payment
		}
		var pay domain.Payment // Companion payment, filled inside the transaction
		// Order and payment are created atomically; a code collision rolls
		// both rows back via the uniqueness constraint
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err // Return error to rollback
			}
			pay = domain.Payment{
				OrderID:        order.ID,                    // Owning order
				PaymentOrderID: orderCode + paySuffix,       // External payment code
				Amount:         req.TotalAmount,             // Charged amount
				Currency:       "INR",                       // Default currency
				Status:         domain.PaymentStatusPending, // Awaiting verification
			}
			if err := tx.Create(&pay).Error; err != nil {
				return err // Return error to rollback
			}
			return nil // Commit transaction
		})
		// Handle transaction result
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id":    user.ID,     // Owning user
				"order_code": orderCode,   // Generated code
				"error":      err.Error(), // Error message
			}).Error("Order creation failed")
			failErr(c, http.StatusInternalServerError, err)
			return
		}
		// Log the placed order
		logrus.WithFields(logrus.Fields{
			"user_id":      user.ID,                         // Owning user
			"order_id":     order.ID,                        // Order primary key
			"order_code":   orderCode,                       // External code
			"total_amount": req.TotalAmount,                 // Order total
			"timestamp":    time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Order created")
		// Return both generated identifiers
		c.JSON(http.StatusOK, gin.H{
			"success":          true,
			"message":          "Order created. Proceed to payment.",
			"order_id":         order.ID,           // Order primary key
			"payment_order_id": pay.PaymentOrderID, // External payment code
		})
	}
}

// VerifyPaymentHandler confirms a pending payment and its order
func VerifyPaymentHandler(db *gorm.DB, provider payment.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Resolved by RequireAuth
		var req VerifyPaymentRequest      // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.PaymentOrderID) == "" {
			fail(c, http.StatusBadRequest, "payment_order_id is required")
			return
		}
		var pay domain.Payment // Look up the payment by its external code
		if err := db.Where("payment_order_id = ?", req.PaymentOrderID).First(&pay).Error; err != nil {
			fail(c, http.StatusNotFound, "Payment not found")
			return
		}
		var order domain.Order // Load the owning order
		if err := db.First(&order, pay.OrderID).Error; err != nil {
			fail(c, http.StatusNotFound, "Payment not found")
			return
		}
		// The caller must own the order
		if order.UserID != user.ID {
			fail(c, http.StatusForbidden, "Unauthorized access")
			return
		}
		// Re-verifying a completed payment is a no-op
		if pay.Status == domain.PaymentStatusCompleted {
			c.JSON(http.StatusOK, gin.H{
				"success":    true,
				"message":    "Payment already verified",
				"order_id":   order.ID,      // Order primary key
				"payment_id": pay.PaymentID, // Previously recorded id
			})
			return
		}
		// Ask the provider to settle the claim; the default provider is a
		// test-mode stub that trusts the client
		conf, err := provider.Verify(c.Request.Context(), payment.VerifyRequest{
			PaymentOrderID: req.PaymentOrderID, // External payment code
			PaymentID:      req.PaymentID,      // Client-supplied id, may be empty
			PaymentMethod:  req.PaymentMethod,  // Client-supplied method, may be empty
		})
		if err != nil {
			fail(c, http.StatusBadRequest, "Payment verification failed")
			return
		}
		// Flip both rows atomically
		err = db.Transaction(func(tx *gorm.DB) error {
			// Mark the payment completed with the provider's confirmation
			if err := tx.Model(&pay).Updates(map[string]any{
				"status":         domain.PaymentStatusCompleted, // pending -> completed
				"payment_id":     conf.PaymentID,                // Provider payment id
				"payment_method": conf.PaymentMethod,            // Payment method
			}).Error; err != nil {
				return err // Return error to rollback
			}
			// Mark the order confirmed
			if err := tx.Model(&order).Update("status", domain.OrderStatusConfirmed).Error; err != nil {
				return err // Return error to rollback
			}
			return nil // Commit transaction
		})
		// Handle transaction result
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":          user.ID,            // Acting user
				"order_id":         order.ID,           // Order primary key
				"payment_order_id": req.PaymentOrderID, // External payment code
				"error":            err.Error(),        // Error message
			}).Error("Payment verification failed")
			failErr(c, http.StatusInternalServerError, err)
			return
		}
		// Log the confirmed payment
		logrus.WithFields(logrus.Fields{
			"user_id":          user.ID,                         // Acting user
			"order_id":         order.ID,                        // Order primary key
			"payment_order_id": req.PaymentOrderID,              // External payment code
			"payment_id":       conf.PaymentID,                  // Provider payment id
			"payment_method":   conf.PaymentMethod,              // Payment method
			"timestamp":        time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Payment verified")
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "Payment verified successfully!",
			"order_id":   order.ID,       // Order primary key
			"payment_id": conf.PaymentID, // Provider payment id
		})
	}
}

// OrderView is an order joined with its payment's status
type OrderView struct {
	ID            uint               `json:"id"`             // Order primary key
	OrderCode     string             `json:"order_id"`       // External order code
	UserName      string             `json:"user_name"`      // Buyer name snapshot
	UserEmail     string             `json:"user_email"`     // Buyer email snapshot
	Items         []domain.OrderItem `json:"items"`          // Line items
	TotalAmount   float64            `json:"total_amount"`   // Order total
	Status        domain.OrderStatus `json:"status"`         // Order lifecycle state
	PaymentStatus string             `json:"payment_status"` // Payment state, or N/A
	CreatedAt     string             `json:"created_at"`     // Placement time
}

// MyOrdersHandler returns the caller's orders, newest first, each annotated
// with its payment's status
func MyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Resolved by RequireAuth
		var orders []domain.Order         // Slice to hold the caller's orders
		if err := db.Where("user_id = ?", user.ID).
			Order("created_at desc").
			Preload("Payments"). // One payment per order in practice
			Find(&orders).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}
		// Map orders to the joined response shape
		views := make([]OrderView, len(orders))
		for i, o := range orders {
			paymentStatus := "N/A" // Shown when no payment row exists
			if len(o.Payments) > 0 {
				paymentStatus = string(o.Payments[0].Status) // Companion payment state
			}
			views[i] = OrderView{
				ID:            o.ID,                           // Order primary key
				OrderCode:     o.OrderCode,                    // External code
				UserName:      o.UserName,                     // Snapshot
				UserEmail:     o.UserEmail,                    // Snapshot
				Items:         o.Items,                        // Line items
				TotalAmount:   o.TotalAmount,                  // Order total
				Status:        o.Status,                       // Lifecycle state
				PaymentStatus: paymentStatus,                  // Payment state
				CreatedAt:     o.CreatedAt.Format(timeLayout), // Placement time
			}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": views})
	}
}

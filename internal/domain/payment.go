package domain

import "time" // Timestamps

// PaymentStatus is the lifecycle state of a payment
type PaymentStatus string

// Payment states; transitions are one-way, pending -> completed
const (
	PaymentStatusPending   PaymentStatus = "pending"   // Created alongside the order
	PaymentStatusCompleted PaymentStatus = "completed" // Verified
)

// Payment Model
type Payment struct {
	ID             uint          `gorm:"primaryKey" json:"id"`                         // Primary key
	OrderID        uint          `gorm:"not null;index" json:"order_id"`               // Foreign key to Order
	PaymentOrderID string        `gorm:"size:100;uniqueIndex" json:"payment_order_id"` // External code, <order_code>_PAY
	PaymentID      string        `gorm:"size:100" json:"payment_id"`                   // Provider payment id, set on verification
	Amount         float64       `gorm:"not null" json:"amount"`                       // Charged amount
	Currency       string        `gorm:"size:10;default:INR" json:"currency"`          // Currency code
	Status         PaymentStatus `gorm:"size:50;default:pending" json:"status"`        // Lifecycle state
	PaymentMethod  string        `gorm:"size:50" json:"payment_method"`                // e.g. card, upi; set on verification
	CreatedAt      time.Time     `json:"created_at"`                                   // Creation timestamp
}

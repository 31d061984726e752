package domain

import "time" // Timestamps

// OrderStatus is the lifecycle state of an order
type OrderStatus string

// Order states; transitions are one-way, payment_pending -> confirmed
const (
	OrderStatusPaymentPending OrderStatus = "payment_pending" // Placed, waiting for payment verification
	OrderStatusConfirmed      OrderStatus = "confirmed"       // Payment verified
)

// OrderItem is a single line of an order, a snapshot of the item at order time
type OrderItem struct {
	Name     string  `json:"name"`     // Item name at order time
	Quantity int     `json:"quantity"` // Number of units
	Price    float64 `json:"price"`    // Unit price at order time
}

// Order Model
type Order struct {
	ID        uint   `gorm:"primaryKey" json:"id"`                         // Primary key
	OrderCode string `gorm:"size:50;uniqueIndex;not null" json:"order_id"` // External 8-char uppercase order code
	UserID    uint   `gorm:"not null;index" json:"user_id"`                // Foreign key to User
	// Point-in-time snapshot of the buyer's contact details, immutable after creation
	UserName    string      `gorm:"size:100;not null" json:"user_name"`            // Name at order time
	UserEmail   string      `gorm:"size:100;not null" json:"user_email"`           // Email at order time
	UserPhone   string      `gorm:"size:20;not null" json:"user_phone"`            // Phone at order time
	UserAddress string      `gorm:"type:text;not null" json:"user_address"`        // Delivery address at order time
	Items       []OrderItem `gorm:"serializer:json;not null" json:"items"`         // Line items stored as JSON
	TotalAmount float64     `gorm:"not null" json:"total_amount"`                  // Sum of all line totals
	Status      OrderStatus `gorm:"size:50;default:payment_pending" json:"status"` // Lifecycle state
	CreatedAt   time.Time   `json:"created_at"`                                    // Placement timestamp

	Payments []Payment `gorm:"constraint:OnUpdate:CASCADE" json:"-"` // One-to-many relationship with Payment (one in practice)
}

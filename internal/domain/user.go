package domain

import "time" // Timestamps

// User Model
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`                       // Primary key
	Name         string     `gorm:"size:100;not null" json:"name"`              // Full name
	Email        string     `gorm:"size:100;uniqueIndex;not null" json:"email"` // Unique email address
	Phone        string     `gorm:"size:20;not null" json:"phone"`              // Contact phone number
	PasswordHash string     `gorm:"size:200;not null" json:"-"`                 // Bcrypt password hash, never serialized
	Address      string     `gorm:"type:text" json:"address"`                   // Delivery address
	IsActive     bool       `gorm:"default:true" json:"is_active"`              // Account active flag
	CreatedAt    time.Time  `json:"created_at"`                                 // Registration timestamp
	LastLogin    *time.Time `json:"last_login,omitempty"`                       // Last successful login, nil until first login

	Orders []Order `gorm:"constraint:OnUpdate:CASCADE" json:"-"` // One-to-many relationship with Order
}

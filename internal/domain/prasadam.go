package domain

// Prasadam Model
type Prasadam struct {
	ID          uint    `gorm:"primaryKey" json:"id"`            // Primary key
	TempleID    uint    `gorm:"not null;index" json:"temple_id"` // Foreign key to Temple
	Name        string  `gorm:"size:100;not null" json:"name"`   // Item name
	Description string  `gorm:"type:text" json:"description"`    // Item description
	Price       float64 `gorm:"not null" json:"price"`           // Price in INR, non-negative
	Available   bool    `gorm:"default:true" json:"available"`   // Whether the item can be ordered
}

// TableName keeps the singular table name ("prasadam" has no plural)
func (Prasadam) TableName() string {
	return "prasadam"
}

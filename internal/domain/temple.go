package domain

// TempleType is the category of a pilgrimage site
type TempleType string

// The two known temple categories
const (
	TempleTypeJyotirlinga TempleType = "jyotirlinga" // One of the twelve Jyotirlingas
	TempleTypeDham        TempleType = "dham"        // One of the major Dhams
)

// Temple Model (created only by the seed step, read-only afterward)
type Temple struct {
	ID          uint       `gorm:"primaryKey" json:"id"`              // Primary key
	Name        string     `gorm:"size:100;not null" json:"name"`     // Temple name
	Location    string     `gorm:"size:100;not null" json:"location"` // State or city
	Type        TempleType `gorm:"size:50;not null" json:"type"`      // jyotirlinga or dham
	Description string     `gorm:"type:text" json:"description"`      // Short description

	PrasadamItems []Prasadam `gorm:"constraint:OnUpdate:CASCADE" json:"-"` // One-to-many relationship with Prasadam
}

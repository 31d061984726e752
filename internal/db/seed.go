package db

import (
	"eprasadam/internal/domain" // Importing domain models
	"eprasadam/internal/utils"  // Password hashing for the demo user

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// seedTemple is one catalog entry: a temple plus its prasadam item names
type seedTemple struct {
	name        string            // Temple name
	location    string            // State or city
	templeType  domain.TempleType // jyotirlinga or dham
	description string            // Short description
	prasadam    []string          // Item names offered by this temple
}

// The fixed catalog: the twelve Jyotirlingas and the major Dhams
var catalog = []seedTemple{
	{"Somnath Temple", "Gujarat", domain.TempleTypeJyotirlinga, "The first among the twelve Jyotirlingas", []string{"Sugarcane Prasad", "Panchamrut", "Laddu"}},
	{"Mallikarjuna Temple", "Andhra Pradesh", domain.TempleTypeJyotirlinga, "Situated on Shri Shaila Mountain", []string{"Pongal", "Pulihora", "Laddu"}},
	{"Mahakaleshwar Temple", "Ujjain, Madhya Pradesh", domain.TempleTypeJyotirlinga, "Known for its Bhasma Aarti", []string{"Mahaprasad", "Panchamrut", "Kheel"}},
	{"Omkareshwar Temple", "Madhya Pradesh", domain.TempleTypeJyotirlinga, "Situated on an island in Narmada river", []string{"Narmada Jal", "Panchamrut", "Besan Laddu"}},
	{"Kedarnath Temple", "Uttarakhand", domain.TempleTypeJyotirlinga, "Located in the Himalayas", []string{"Charnamrit", "Dry Fruits", "Panchamrut"}},
	{"Bhimashankar Temple", "Maharashtra", domain.TempleTypeJyotirlinga, "Located in Sahyadri hills", []string{"Puran Poli", "Panchamrut", "Laddu"}},
	{"Kashi Vishwanath Temple", "Varanasi, Uttar Pradesh", domain.TempleTypeJyotirlinga, "Most famous Jyotirlinga", []string{"Ganga Jal", "Panchamrut", "Laddu"}},
	{"Trimbakeshwar Temple", "Nashik, Maharashtra", domain.TempleTypeJyotirlinga, "Source of Godavari river", []string{"Godavari Jal", "Panchamrut", "Pedha"}},
	{"Vaidyanath Temple", "Deoghar, Jharkhand", domain.TempleTypeJyotirlinga, "One of the 51 Shakti Peethas", []string{"Bael Patra", "Panchamrut", "Laddu"}},
	{"Nageshwar Temple", "Gujarat", domain.TempleTypeJyotirlinga, "Dwarka Shiva Temple", []string{"Tulsi Prasad", "Panchamrut", "Dry Fruits"}},
	{"Rameshwaram Temple", "Tamil Nadu", domain.TempleTypeJyotirlinga, "Southernmost Jyotirlinga", []string{"Sandalwood Paste", "Panchamrut", "Pongal"}},
	{"Grishneshwar Temple", "Aurangabad, Maharashtra", domain.TempleTypeJyotirlinga, "Last of the twelve Jyotirlingas", []string{"Shiva Linga Abhishek Kit", "Panchamrut", "Laddu"}},
	{"Badrinath Dham", "Uttarakhand", domain.TempleTypeDham, "Abode of Lord Vishnu", []string{"Badri Tulsi", "Dry Fruits", "Panchamrut"}},
	{"Dwarka Dham", "Gujarat", domain.TempleTypeDham, "Kingdom of Lord Krishna", []string{"Dwarka Prasad", "Panchamrut", "Maha Prasad"}},
	{"Jagannath Puri Dham", "Odisha", domain.TempleTypeDham, "Famous for Rath Yatra", []string{"Mahaprasad", "Khaja", "Peda"}},
	{"Rameshwaram Dham", "Tamil Nadu", domain.TempleTypeDham, "Southern pilgrimage site", []string{"Sandalwood Paste", "Pongal", "Laddu"}},
}

// Demo account created on first seed
const (
	DemoEmail    = "devotee@example.com" // Demo user email
	demoPassword = "prasadam123"         // Demo user password
)

// SeedPrice derives an item's price from its name, the catalog's fixed rule
func SeedPrice(name string) float64 {
	return 150.0 + float64(len(name))*10 // Base price plus 10 INR per character
}

// Seed populates the store with the fixed temple catalog and a demo user.
// It is idempotent: a database that already has temples is left untouched.
func Seed(db *gorm.DB) error {
	var templeCount int64 // Existing temple count
	if err := db.Model(&domain.Temple{}).Count(&templeCount).Error; err != nil {
		return err // Count failed
	}
	if templeCount > 0 {
		logrus.Info("Database already has data, skipping seed")
		return nil
	}
	// Everything is inserted in one transaction
	return db.Transaction(func(tx *gorm.DB) error {
		for _, t := range catalog {
			temple := domain.Temple{
				Name:        t.name,        // Temple name
				Location:    t.location,    // State or city
				Type:        t.templeType,  // jyotirlinga or dham
				Description: t.description, // Short description
			}
			if err := tx.Create(&temple).Error; err != nil {
				return err // Return error to rollback
			}
			// Add this temple's prasadam items
			for _, item := range t.prasadam {
				p := domain.Prasadam{
					TempleID:    temple.ID,                         // Owning temple
					Name:        item,                              // Item name
					Description: "Blessed prasadam from " + t.name, // Item description
					Price:       SeedPrice(item),                   // Derived price
					Available:   true,                              // Orderable
				}
				if err := tx.Create(&p).Error; err != nil {
					return err // Return error to rollback
				}
			}
		}
		// Create a demo user if no users exist
		var userCount int64
		if err := tx.Model(&domain.User{}).Count(&userCount).Error; err != nil {
			return err // Count failed
		}
		if userCount == 0 {
			hash, err := utils.HashPassword(demoPassword) // Hash the demo password
			if err != nil {
				return err // Hashing failed
			}
			demo := domain.User{
				Name:         "Demo Devotee",            // Demo name
				Email:        DemoEmail,                 // Demo email
				Phone:        "9876543210",              // Demo phone
				PasswordHash: hash,                      // Bcrypt hash
				Address:      "Varanasi, Uttar Pradesh", // Demo address
				IsActive:     true,                      // Active
			}
			if err := tx.Create(&demo).Error; err != nil {
				return err // Return error to rollback
			}
			logrus.Infof("Demo user created: %s", DemoEmail)
		}
		logrus.Info("Database seeded successfully")
		return nil // Commit transaction
	})
}

package config

import (
	"log"

	"securepay-portal/internal/adapters/persistence/models"
	"securepay-portal/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db   *gorm.DB
	cost int
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, bcryptCost int) *Seeder {
	return &Seeder{db: db, cost: bcryptCost}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedDefaultAdmin(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedDefaultAdmin creates the bootstrap staff account, already approved
// so it can approve the first real registrations. It only runs while the
// staff table is completely empty; once any staff record exists the
// system is considered bootstrapped.
func (s *Seeder) seedDefaultAdmin() error {
	var count int64
	if err := s.db.Model(&models.Staff{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash("Admin@123", s.cost)
	if err != nil {
		return err
	}

	admin := &models.Staff{
		Username:       "admin",
		Password:       hashedPassword,
		FullName:       "System Administrator",
		Status:         models.StatusApproved,
		IsDefaultAdmin: true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Default admin created: %s", admin.Username)
	log.Println("⚠️ Change the default admin password after first login")
	return nil
}

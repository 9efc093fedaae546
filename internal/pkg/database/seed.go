package database

import (
	"errors"
	"log"

	"github.com/vaishalishah/portfolio/app/models"
	"github.com/vaishalishah/portfolio/app/repository"
	"github.com/vaishalishah/portfolio/internal/pkg/env"
	"gorm.io/gorm"
)

// SeedAdminFromEnv ensures the account named by ADMIN_EMAIL exists and holds
// the Admin role. Failures are logged and never stop the process.
func SeedAdminFromEnv(users repository.UserRepository) {
	email := env.GetEnv("ADMIN_EMAIL", "")
	password := env.GetEnv("ADMIN_PASSWORD", "")
	if email == "" {
		log.Println("ADMIN_EMAIL not set, skipping admin seeding")
		return
	}
	if err := SeedAdmin(users, email, password); err != nil {
		log.Printf("Error seeding admin user: %v", err)
	}
}

// SeedAdmin creates the admin account if missing, or promotes an existing
// account that lacks the Admin role.
func SeedAdmin(users repository.UserRepository, email, password string) error {
	existing, err := users.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if existing == nil {
		if password == "" {
			return errors.New("ADMIN_PASSWORD is required to create the admin user")
		}
		user, err := models.CreateUser(email, password, models.ROLE_ADMIN)
		if err != nil {
			return err
		}
		if err := users.Create(user); err != nil {
			return err
		}
		log.Println("Admin user created and assigned to Admin role.")
		return nil
	}

	if existing.IsAdmin() {
		log.Println("Admin user already has Admin role.")
		return nil
	}

	if err := users.UpdateRole(existing.ID, models.ROLE_ADMIN); err != nil {
		return err
	}
	log.Println("Admin role assigned to existing user.")
	return nil
}

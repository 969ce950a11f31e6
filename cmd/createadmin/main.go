package main

import (
	"context"
	"log"

	"school-store/config"
	"school-store/models"
	"school-store/repositories"
	"school-store/utils"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin123"
)

func main() {
	config.LoadConfig()
	config.ConnectDB()
	defer config.CloseDB()

	ctx := context.Background()
	repo := repositories.NewUserRepository()

	existing, err := repo.FindByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatalf("Failed to look up admin user: %v", err)
	}

	if existing != nil {
		if existing.IsAdmin {
			log.Println("Admin user already exists")
			return
		}
		existing.IsAdmin = true
		if err := repo.Update(ctx, existing); err != nil {
			log.Fatalf("Failed to promote user: %v", err)
		}
		log.Println("Existing user updated to admin")
		return
	}

	hashed, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		FullName: "Admin User",
		Email:    adminEmail,
		Password: hashed,
		IsAdmin:  true,
	}
	if err := repo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Admin user created (id=%d)", user.ID)
}

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"support-portal-backend/internal/config"
	"support-portal-backend/internal/database"
	"support-portal-backend/internal/database/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// UserData matches one entry of the YAML seed file
type UserData struct {
	Email      string `yaml:"email"`
	Password   string `yaml:"password"`
	CustomerID string `yaml:"customer_id"`
	Role       string `yaml:"role"`
}

// defaultUsers are created when no seed file is given. One admin per demo
// tenant so both sides of the isolation boundary are exercisable out of the
// box.
var defaultUsers = []UserData{
	{Email: "admin@logisticsco.com", Password: "admin123", CustomerID: "logisticsco", Role: "Admin"},
	{Email: "admin@retailgmbh.com", Password: "admin123", CustomerID: "retailgmbh", Role: "Admin"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	users := defaultUsers
	if len(os.Args) > 1 {
		users, err = loadSeedFile(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}
	}

	created := 0
	for _, u := range users {
		ok, err := seedUser(db, u)
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Email, err)
		}
		if ok {
			created++
		}
	}

	log.Printf("Seeding complete: %d of %d users created", created, len(users))
}

func loadSeedFile(path string) ([]UserData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var users []UserData
	if err := yaml.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return users, nil
}

// seedUser inserts one user unless its email is already taken. Returns true
// when a row was created.
func seedUser(db *gorm.DB, data UserData) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	var existing models.User
	err := db.Where("lower(email) = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("User %s already exists, skipping", email)
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	role := models.UserRole(data.Role)
	if role == "" {
		role = models.UserRoleUser
	}
	if !role.IsValid() {
		return false, fmt.Errorf("invalid role %q", data.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		CustomerID:   data.CustomerID,
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		return false, err
	}

	log.Printf("Created %s user %s for tenant %s", role, email, data.CustomerID)
	return true, nil
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"floodwatch/internal/auth"
	"floodwatch/internal/config"
	"floodwatch/internal/db"
	"floodwatch/internal/model"
	"floodwatch/internal/repository"
)

// SeedFile is the layout of the seed YAML.
type SeedFile struct {
	Admins   []SeedAdmin   `yaml:"admins"`
	Contacts []SeedContact `yaml:"emergency_contacts"`
}

// SeedAdmin is an admin account to create when its email is unused.
type SeedAdmin struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	FullName string `yaml:"full_name"`
}

// SeedContact is an emergency contact, matched on name and region.
type SeedContact struct {
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Phone  string `yaml:"phone"`
	Email  string `yaml:"email"`
	Region string `yaml:"region"`
}

func main() {
	path := flag.String("file", "seed.yaml", "path to the seed YAML file")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	seed, err := loadSeedFile(*path)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}

	ctx := context.Background()
	now := time.Now().UTC()

	admins, err := seedAdmins(ctx, repository.NewUserRepository(gormDB), seed.Admins, now)
	if err != nil {
		log.Fatalf("Failed to seed admins: %v", err)
	}
	contacts, err := seedContacts(ctx, repository.NewContactRepository(gormDB), seed.Contacts, now)
	if err != nil {
		log.Fatalf("Failed to seed emergency contacts: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Admin accounts created: %d of %d", admins, len(seed.Admins))
	log.Printf("  - Emergency contacts created: %d of %d", contacts, len(seed.Contacts))
}

func loadSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &seed, nil
}

// seedAdmins creates the admins whose email is not registered yet.
func seedAdmins(ctx context.Context, repo repository.UserRepository, admins []SeedAdmin, now time.Time) (int, error) {
	created := 0
	for _, a := range admins {
		email := strings.TrimSpace(a.Email)
		if email == "" || a.Username == "" || len(a.Password) < 8 {
			return created, fmt.Errorf("admin %q: username, email and a password of 8+ characters are required", a.Username)
		}

		_, err := repo.FindByEmail(ctx, email)
		if err == nil {
			log.Printf("Admin %s already exists, skipping", email)
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return created, fmt.Errorf("error checking admin %s: %w", email, err)
		}

		hash, err := auth.HashPassword(a.Password)
		if err != nil {
			return created, err
		}
		user := &model.User{
			Username:     strings.TrimSpace(a.Username),
			FullName:     strings.TrimSpace(a.FullName),
			Email:        email,
			PasswordHash: hash,
			Role:         model.RoleAdmin,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repo.Create(ctx, user); err != nil {
			return created, fmt.Errorf("error creating admin %s: %w", email, err)
		}
		created++
	}
	return created, nil
}

// seedContacts creates the contacts not already present in their region.
func seedContacts(ctx context.Context, repo repository.ContactRepository, contacts []SeedContact, now time.Time) (int, error) {
	created := 0
	for _, sc := range contacts {
		name := strings.TrimSpace(sc.Name)
		if name == "" {
			return created, errors.New("emergency contact without a name")
		}
		region := strings.TrimSpace(sc.Region)

		n, err := repo.Count(ctx, repository.Query{Filters: []repository.Filter{
			repository.Eq("name", name),
			repository.Eq("region", region),
		}})
		if err != nil {
			return created, fmt.Errorf("error checking contact %s: %w", name, err)
		}
		if n > 0 {
			continue
		}

		contact := &model.EmergencyContact{
			Name:      name,
			Role:      strings.TrimSpace(sc.Role),
			Phone:     strings.TrimSpace(sc.Phone),
			Email:     strings.TrimSpace(sc.Email),
			Region:    region,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(ctx, contact); err != nil {
			return created, fmt.Errorf("error creating contact %s: %w", name, err)
		}
		created++
	}
	return created, nil
}

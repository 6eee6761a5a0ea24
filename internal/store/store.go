package store

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Ostroner/smartCarproject/internal/model"
)

var (
	// ErrDuplicate means a username or email is already taken.
	ErrDuplicate = errors.New("username or email already exists")
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")
)

// Store is the persistence contract shared by the MySQL backend and the
// in-memory fallback. The selector picks one implementation at startup and
// every handler talks to it through this interface.
type Store interface {
	// RegisterUser hashes the plaintext password and persists a new user.
	// Returns ErrDuplicate if the username or email is already taken. The
	// uniqueness check and the insert are not atomic; two near-simultaneous
	// registrations of the same name can both pass the check. Known,
	// accepted limitation.
	RegisterUser(username, email, password string) (*model.User, error)

	// UserByUsername returns ErrNotFound if no such user exists.
	UserByUsername(username string) (*model.User, error)

	// UserByEmail returns ErrNotFound if no such user exists.
	UserByEmail(email string) (*model.User, error)

	// VerifyPassword reports whether the plaintext matches the user's stored
	// hash. Always a constant-time bcrypt comparison, never a string compare.
	VerifyPassword(u *model.User, password string) bool

	// UpdatePassword overwrites the stored hash for the given user id.
	// Returns ErrNotFound if the user does not exist.
	UpdatePassword(userID uint, passwordHash string) error

	CreateCustomer(c *model.Customer) error
	Customers() ([]model.Customer, error)
	CustomerByID(id uint) (*model.Customer, error)
	UpdateCustomer(c *model.Customer) error
	DeleteCustomer(id uint) error

	CreateCar(c *model.Car) error
	Cars() ([]model.Car, error)
	UpdateCar(c *model.Car) error
	// DeleteCar removes the car and cascades to its service records and
	// payments in both backends.
	DeleteCar(id uint) error

	CreateServiceRecord(r *model.ServiceRecord) error
	ServiceRecords() ([]model.ServiceRecord, error)
	UpdateServiceRecord(r *model.ServiceRecord) error
	DeleteServiceRecord(id uint) error

	CreatePayment(p *model.Payment) error
	Payments() ([]model.Payment, error)
}

const (
	// HashCost is the fixed bcrypt cost for all stored credentials.
	HashCost = 10

	SeedUsername = "admin"
	SeedEmail    = "admin@crpms.com"
	SeedPassword = "Admin@123"
)

// HashPassword produces the bcrypt digest stored for a credential.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Seed ensures the admin account exists. It runs through the Store contract
// itself so both backends end up with identical seed data by construction.
func Seed(s Store) error {
	_, err := s.UserByUsername(SeedUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("seed lookup: %w", err)
	}
	if _, err := s.RegisterUser(SeedUsername, SeedEmail, SeedPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

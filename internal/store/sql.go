package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ostroner/smartCarproject/internal/config"
	"github.com/Ostroner/smartCarproject/internal/model"
)

// SQLStore is the relational backend, backed by MySQL through GORM.
type SQLStore struct {
	db *gorm.DB
}

// OpenSQL connects to MySQL, verifies the connection with a ping and runs
// migrations. The returned store is ready to serve requests.
func OpenSQL(cfg *config.Config) (*SQLStore, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB(): %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	s := &SQLStore{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSQLStore wraps an already-open GORM connection and runs migrations.
// Used by tests to run the store against SQLite.
func NewSQLStore(db *gorm.DB) (*SQLStore, error) {
	s := &SQLStore{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) migrate() error {
	err := s.db.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Car{},
		&model.ServiceRecord{},
		&model.Payment{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (s *SQLStore) RegisterUser(username, email, password string) (*model.User, error) {
	var count int64
	err := s.db.Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := model.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.db.Create(&u).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

func (s *SQLStore) UserByUsername(username string) (*model.User, error) {
	var u model.User
	if err := s.db.First(&u, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &u, nil
}

func (s *SQLStore) UserByEmail(email string) (*model.User, error) {
	var u model.User
	if err := s.db.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (s *SQLStore) VerifyPassword(u *model.User, password string) bool {
	return checkPassword(u.PasswordHash, password)
}

func (s *SQLStore) UpdatePassword(userID uint, passwordHash string) error {
	res := s.db.Model(&model.User{}).Where("id = ?", userID).Update("password", passwordHash)
	if res.Error != nil {
		return fmt.Errorf("update password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) CreateCustomer(c *model.Customer) error {
	if err := s.db.Create(c).Error; err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

func (s *SQLStore) Customers() ([]model.Customer, error) {
	var out []model.Customer
	if err := s.db.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

func (s *SQLStore) CustomerByID(id uint) (*model.Customer, error) {
	var c model.Customer
	if err := s.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &c, nil
}

func (s *SQLStore) UpdateCustomer(c *model.Customer) error {
	var existing model.Customer
	if err := s.db.First(&existing, c.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update customer: %w", err)
	}
	existing.Name = c.Name
	existing.Email = c.Email
	existing.Phone = c.Phone
	existing.Address = c.Address
	if err := s.db.Save(&existing).Error; err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	*c = existing
	return nil
}

func (s *SQLStore) DeleteCustomer(id uint) error {
	res := s.db.Delete(&model.Customer{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) CreateCar(c *model.Car) error {
	if err := s.db.Create(c).Error; err != nil {
		return fmt.Errorf("create car: %w", err)
	}
	return nil
}

func (s *SQLStore) Cars() ([]model.Car, error) {
	var out []model.Car
	if err := s.db.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	return out, nil
}

func (s *SQLStore) UpdateCar(c *model.Car) error {
	var existing model.Car
	if err := s.db.First(&existing, c.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update car: %w", err)
	}
	existing.LicensePlate = c.LicensePlate
	existing.Make = c.Make
	existing.Model = c.Model
	existing.Year = c.Year
	existing.OwnerName = c.OwnerName
	if err := s.db.Save(&existing).Error; err != nil {
		return fmt.Errorf("update car: %w", err)
	}
	*c = existing
	return nil
}

func (s *SQLStore) DeleteCar(id uint) error {
	// SQLite in tests does not always enforce the FK cascade, so the
	// dependents are removed explicitly. MySQL would cascade either way.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("car_id = ?", id).Delete(&model.ServiceRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("car_id = ?", id).Delete(&model.Payment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Car{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete car: %w", err)
	}
	return nil
}

func (s *SQLStore) CreateServiceRecord(r *model.ServiceRecord) error {
	if err := s.db.Create(r).Error; err != nil {
		return fmt.Errorf("create service record: %w", err)
	}
	return nil
}

func (s *SQLStore) ServiceRecords() ([]model.ServiceRecord, error) {
	var out []model.ServiceRecord
	if err := s.db.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list service records: %w", err)
	}
	return out, nil
}

func (s *SQLStore) UpdateServiceRecord(r *model.ServiceRecord) error {
	var existing model.ServiceRecord
	if err := s.db.First(&existing, r.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update service record: %w", err)
	}
	existing.CarID = r.CarID
	existing.ServiceID = r.ServiceID
	existing.Description = r.Description
	existing.Cost = r.Cost
	existing.Date = r.Date
	if err := s.db.Save(&existing).Error; err != nil {
		return fmt.Errorf("update service record: %w", err)
	}
	*r = existing
	return nil
}

func (s *SQLStore) DeleteServiceRecord(id uint) error {
	res := s.db.Delete(&model.ServiceRecord{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete service record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) CreatePayment(p *model.Payment) error {
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (s *SQLStore) Payments() ([]model.Payment, error) {
	var out []model.Payment
	if err := s.db.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return out, nil
}

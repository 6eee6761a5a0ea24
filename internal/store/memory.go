package store

import (
	"sync"
	"time"

	"github.com/Ostroner/smartCarproject/internal/model"
)

// MemoryStore is the volatile fallback backend, used when MySQL is not
// reachable at startup. Everything lives in process memory: a restart resets
// the store to its seed data (the single admin user) and all other data is
// lost. That is expected behavior, not a bug.
type MemoryStore struct {
	mu        sync.RWMutex
	users     []model.User
	customers []model.Customer
	cars      []model.Car
	records   []model.ServiceRecord
	payments  []model.Payment
	nextID    map[string]uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: map[string]uint{
			"users":     1,
			"customers": 1,
			"cars":      1,
			"records":   1,
			"payments":  1,
		},
	}
}

func (m *MemoryStore) assignID(kind string) uint {
	id := m.nextID[kind]
	m.nextID[kind] = id + 1
	return id
}

func (m *MemoryStore) RegisterUser(username, email, password string) (*model.User, error) {
	// Hash outside the lock; bcrypt is slow on purpose.
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].Username == username || m.users[i].Email == email {
			return nil, ErrDuplicate
		}
	}
	u := model.User{
		ID:           m.assignID("users"),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	m.users = append(m.users, u)
	return &u, nil
}

func (m *MemoryStore) UserByUsername(username string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.users {
		if m.users[i].Username == username {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) UserByEmail(email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) VerifyPassword(u *model.User, password string) bool {
	return checkPassword(u.PasswordHash, password)
}

func (m *MemoryStore) UpdatePassword(userID uint, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == userID {
			m.users[i].PasswordHash = passwordHash
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) CreateCustomer(c *model.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.assignID("customers")
	c.CreatedAt = time.Now()
	m.customers = append(m.customers, *c)
	return nil
}

func (m *MemoryStore) Customers() ([]model.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Customer, len(m.customers))
	copy(out, m.customers)
	return out, nil
}

func (m *MemoryStore) CustomerByID(id uint) (*model.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.customers {
		if m.customers[i].ID == id {
			c := m.customers[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) UpdateCustomer(c *model.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.customers {
		if m.customers[i].ID == c.ID {
			m.customers[i].Name = c.Name
			m.customers[i].Email = c.Email
			m.customers[i].Phone = c.Phone
			m.customers[i].Address = c.Address
			*c = m.customers[i]
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) DeleteCustomer(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.customers {
		if m.customers[i].ID == id {
			m.customers = append(m.customers[:i], m.customers[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) CreateCar(c *model.Car) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.assignID("cars")
	c.CreatedAt = time.Now()
	m.cars = append(m.cars, *c)
	return nil
}

func (m *MemoryStore) Cars() ([]model.Car, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Car, len(m.cars))
	copy(out, m.cars)
	return out, nil
}

func (m *MemoryStore) UpdateCar(c *model.Car) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cars {
		if m.cars[i].ID == c.ID {
			m.cars[i].LicensePlate = c.LicensePlate
			m.cars[i].Make = c.Make
			m.cars[i].Model = c.Model
			m.cars[i].Year = c.Year
			m.cars[i].OwnerName = c.OwnerName
			*c = m.cars[i]
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) DeleteCar(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cars {
		if m.cars[i].ID == id {
			m.cars = append(m.cars[:i], m.cars[i+1:]...)
			// Mirror the relational ON DELETE CASCADE.
			kept := m.records[:0]
			for _, r := range m.records {
				if r.CarID != id {
					kept = append(kept, r)
				}
			}
			m.records = kept
			keptPay := m.payments[:0]
			for _, p := range m.payments {
				if p.CarID != id {
					keptPay = append(keptPay, p)
				}
			}
			m.payments = keptPay
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) CreateServiceRecord(r *model.ServiceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = m.assignID("records")
	r.CreatedAt = time.Now()
	m.records = append(m.records, *r)
	return nil
}

func (m *MemoryStore) ServiceRecords() ([]model.ServiceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.ServiceRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MemoryStore) UpdateServiceRecord(r *model.ServiceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if m.records[i].ID == r.ID {
			m.records[i].CarID = r.CarID
			m.records[i].ServiceID = r.ServiceID
			m.records[i].Description = r.Description
			m.records[i].Cost = r.Cost
			m.records[i].Date = r.Date
			*r = m.records[i]
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) DeleteServiceRecord(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if m.records[i].ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) CreatePayment(p *model.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.assignID("payments")
	p.CreatedAt = time.Now()
	m.payments = append(m.payments, *p)
	return nil
}

func (m *MemoryStore) Payments() ([]model.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Payment, len(m.payments))
	copy(out, m.payments)
	return out, nil
}

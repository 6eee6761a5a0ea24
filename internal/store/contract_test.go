package store_test

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ostroner/smartCarproject/internal/model"
	"github.com/Ostroner/smartCarproject/internal/store"
)

// Both backends must satisfy the same contract, so every test here runs
// against both: the in-memory store and the GORM store (over SQLite, which
// stands in for MySQL).
func backends(t *testing.T) map[string]store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlStore, err := store.NewSQLStore(db)
	require.NoError(t, err)

	stores := map[string]store.Store{
		"memory": store.NewMemoryStore(),
		"sql":    sqlStore,
	}
	for _, s := range stores {
		require.NoError(t, store.Seed(s))
	}
	return stores
}

func TestSeedAdmin(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			u, err := s.UserByUsername(store.SeedUsername)
			require.NoError(t, err)
			assert.Equal(t, store.SeedEmail, u.Email)
			assert.True(t, s.VerifyPassword(u, store.SeedPassword))
			assert.False(t, s.VerifyPassword(u, "not-the-password"))

			// Seeding again must be a no-op, not a duplicate.
			require.NoError(t, store.Seed(s))
			byEmail, err := s.UserByEmail(store.SeedEmail)
			require.NoError(t, err)
			assert.Equal(t, u.ID, byEmail.ID)
		})
	}
}

func TestRegisterAndFind(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			u, err := s.RegisterUser("bob", "bob@x.com", "secret1")
			require.NoError(t, err)
			assert.NotZero(t, u.ID)
			assert.False(t, u.CreatedAt.IsZero())
			assert.NotEqual(t, "secret1", u.PasswordHash, "password must not be stored in plaintext")

			byName, err := s.UserByUsername("bob")
			require.NoError(t, err)
			assert.Equal(t, u.ID, byName.ID)

			byEmail, err := s.UserByEmail("bob@x.com")
			require.NoError(t, err)
			assert.Equal(t, u.ID, byEmail.ID)

			assert.True(t, s.VerifyPassword(byName, "secret1"))
			assert.False(t, s.VerifyPassword(byName, "secret2"))
			assert.False(t, s.VerifyPassword(byName, ""))
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.RegisterUser("bob", "bob@x.com", "secret1")
			require.NoError(t, err)

			_, err = s.RegisterUser("bob", "other@x.com", "whatever")
			assert.ErrorIs(t, err, store.ErrDuplicate, "same username")

			_, err = s.RegisterUser("other", "bob@x.com", "whatever")
			assert.ErrorIs(t, err, store.ErrDuplicate, "same email")
		})
	}
}

func TestFindMissingUser(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.UserByUsername("nobody")
			assert.ErrorIs(t, err, store.ErrNotFound)
			_, err = s.UserByEmail("nobody@x.com")
			assert.ErrorIs(t, err, store.ErrNotFound)
		})
	}
}

func TestUpdatePassword(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			u, err := s.RegisterUser("bob", "bob@x.com", "secret1")
			require.NoError(t, err)

			hash, err := store.HashPassword("secret2")
			require.NoError(t, err)
			require.NoError(t, s.UpdatePassword(u.ID, hash))

			fresh, err := s.UserByUsername("bob")
			require.NoError(t, err)
			assert.True(t, s.VerifyPassword(fresh, "secret2"))
			assert.False(t, s.VerifyPassword(fresh, "secret1"))

			// Only the hash changes.
			assert.Equal(t, u.Username, fresh.Username)
			assert.Equal(t, u.Email, fresh.Email)

			assert.ErrorIs(t, s.UpdatePassword(99999, hash), store.ErrNotFound)
		})
	}
}

func TestCustomerCRUD(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			c := &model.Customer{Name: "Alice", Phone: "0788000001", Email: "alice@x.com", Address: "Kigali"}
			require.NoError(t, s.CreateCustomer(c))
			assert.NotZero(t, c.ID)

			got, err := s.CustomerByID(c.ID)
			require.NoError(t, err)
			assert.Equal(t, "Alice", got.Name)

			got.Name = "Alice B"
			got.Address = ""
			require.NoError(t, s.UpdateCustomer(got))
			again, err := s.CustomerByID(c.ID)
			require.NoError(t, err)
			assert.Equal(t, "Alice B", again.Name)
			assert.Empty(t, again.Address)

			all, err := s.Customers()
			require.NoError(t, err)
			assert.Len(t, all, 1)

			require.NoError(t, s.DeleteCustomer(c.ID))
			_, err = s.CustomerByID(c.ID)
			assert.ErrorIs(t, err, store.ErrNotFound)
			assert.ErrorIs(t, s.DeleteCustomer(c.ID), store.ErrNotFound)
		})
	}
}

func TestCarDeleteCascades(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			car := &model.Car{LicensePlate: "RAB 123 A", Make: "Toyota", Model: "Corolla", Year: 2018, OwnerName: "Alice"}
			require.NoError(t, s.CreateCar(car))
			other := &model.Car{LicensePlate: "RAB 456 B", Make: "Honda", Model: "Civic", Year: 2020, OwnerName: "Bob"}
			require.NoError(t, s.CreateCar(other))

			rec := &model.ServiceRecord{CarID: car.ID, ServiceID: 3, Cost: 60000, Date: "2026-08-01"}
			require.NoError(t, s.CreateServiceRecord(rec))
			keep := &model.ServiceRecord{CarID: other.ID, ServiceID: 1, Cost: 150000, Date: "2026-08-02"}
			require.NoError(t, s.CreateServiceRecord(keep))
			pay := &model.Payment{CarID: car.ID, Amount: 60000, PaymentMethod: "cash", Date: "2026-08-01"}
			require.NoError(t, s.CreatePayment(pay))

			require.NoError(t, s.DeleteCar(car.ID))

			recs, err := s.ServiceRecords()
			require.NoError(t, err)
			require.Len(t, recs, 1)
			assert.Equal(t, other.ID, recs[0].CarID)

			pays, err := s.Payments()
			require.NoError(t, err)
			assert.Empty(t, pays)

			remaining, err := s.Cars()
			require.NoError(t, err)
			assert.Len(t, remaining, 1)

			assert.ErrorIs(t, s.DeleteCar(car.ID), store.ErrNotFound)
		})
	}
}

func TestServiceRecordUpdateDelete(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			car := &model.Car{LicensePlate: "RAC 001 C", Make: "Mazda", Model: "Demio", Year: 2015, OwnerName: "Carol"}
			require.NoError(t, s.CreateCar(car))

			rec := &model.ServiceRecord{CarID: car.ID, ServiceID: 4, Description: "worn chain", Cost: 40000, Date: "2026-08-10"}
			require.NoError(t, s.CreateServiceRecord(rec))

			rec.Cost = 45000
			rec.Description = "worn chain, replaced"
			require.NoError(t, s.UpdateServiceRecord(rec))

			all, err := s.ServiceRecords()
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, 45000.0, all[0].Cost)

			require.NoError(t, s.DeleteServiceRecord(rec.ID))
			assert.ErrorIs(t, s.DeleteServiceRecord(rec.ID), store.ErrNotFound)

			missing := &model.ServiceRecord{ID: 99999, CarID: car.ID, ServiceID: 1, Cost: 1, Date: "2026-08-10"}
			assert.ErrorIs(t, s.UpdateServiceRecord(missing), store.ErrNotFound)
		})
	}
}

// A fresh in-memory store holds exactly the seeded admin, nothing else:
// restart behavior for the fallback backend.
func TestMemoryStoreResetsToSeed(t *testing.T) {
	first := store.NewMemoryStore()
	require.NoError(t, store.Seed(first))
	_, err := first.RegisterUser("bob", "bob@x.com", "secret1")
	require.NoError(t, err)

	second := store.NewMemoryStore()
	require.NoError(t, store.Seed(second))

	_, err = second.UserByUsername("bob")
	assert.ErrorIs(t, err, store.ErrNotFound)

	admin, err := second.UserByUsername(store.SeedUsername)
	require.NoError(t, err)
	assert.True(t, second.VerifyPassword(admin, store.SeedPassword))
}

package model

import "time"

// User is an account that can sign in to the shop backend. PasswordHash is a
// bcrypt digest and is never serialized.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:255;unique;not null" json:"username"`
	Email        string    `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Address   string    `gorm:"size:255" json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

type Car struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	LicensePlate string    `gorm:"size:50;unique;not null" json:"licensePlate"`
	Make         string    `gorm:"size:100;not null" json:"make"`
	Model        string    `gorm:"size:100;not null" json:"model"`
	Year         int       `gorm:"not null" json:"year"`
	OwnerName    string    `gorm:"size:255;not null" json:"ownerName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ServiceRecord links a car to an entry of the service catalog. Date is a
// caller-supplied display date, kept as text like the original schema.
type ServiceRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CarID       uint      `gorm:"not null;index" json:"carId"`
	Car         *Car      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ServiceID   uint      `gorm:"not null" json:"serviceId"`
	Description string    `gorm:"type:text" json:"description"`
	Cost        float64   `gorm:"not null" json:"cost"`
	Date        string    `gorm:"size:50;not null" json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CarID         uint      `gorm:"not null;index" json:"carId"`
	Car           *Car      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PaymentMethod string    `gorm:"size:50;not null" json:"paymentMethod"`
	Date          string    `gorm:"size:50;not null" json:"date"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (ServiceRecord) TableName() string { return "service_records" }

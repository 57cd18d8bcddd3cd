package models

// User represents a registered customer account.
type User struct {
	BaseModel
	Name         string  `json:"name"`
	Email        string  `gorm:"uniqueIndex" json:"email"`
	Phone        string  `gorm:"uniqueIndex" json:"phone"`
	PasswordHash string  `json:"-"`
	Orders       []Order `json:"orders,omitempty"`
}

package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/example/cafeshop/internal/models"
)

// UserStore persists user identity and credentials.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore constructs a UserStore over an injected connection handle.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByEmailOrPhone returns the user matching either credential, or
// ErrNotFound.
func (s *UserStore) FindByEmailOrPhone(email, phone string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ? OR phone = ?", email, phone).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the user with the given email, or ErrNotFound.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. The password must already be hashed; plaintext
// never reaches this layer. Returns ErrDuplicate when the email or phone
// unique constraints are violated.
func (s *UserStore) Create(user *models.User) error {
	err := s.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

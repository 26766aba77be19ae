package store

import (
	"errors"
	"fmt"
	"storyapp/internal/models"

	"gorm.io/gorm"
)

// UserStore owns persistence for user records. The password field holds a
// bcrypt hash by the time a record reaches the store; hashing itself lives
// with the callers in the handler layer.
type UserStore interface {
	Create(user *models.User) error
	ByID(id uint) (*models.User, error)
	ByEmail(email string) (*models.User, error)
	ByUsername(username string) (*models.User, error)
	Update(id uint, updates map[string]interface{}) (*models.User, error)
}

type gormUserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

func (s *gormUserStore) Create(user *models.User) error {
	if _, err := s.ByEmail(user.Email); err == nil {
		return ErrDuplicateEmail
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	if _, err := s.ByUsername(user.Username); err == nil {
		return ErrDuplicateUsername
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent registration; the unique
			// index decided. Figure out which field collided.
			if _, lookupErr := s.ByEmail(user.Email); lookupErr == nil {
				return ErrDuplicateEmail
			}
			return ErrDuplicateUsername
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *gormUserStore) ByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &user, nil
}

func (s *gormUserStore) ByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (s *gormUserStore) ByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &user, nil
}

// Update applies only the supplied fields and returns the fresh record.
func (s *gormUserStore) Update(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := s.ByID(id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				if _, ok := updates["email"]; ok {
					return nil, ErrDuplicateEmail
				}
				return nil, ErrDuplicateUsername
			}
			return nil, fmt.Errorf("update user %d: %w", id, err)
		}
	}
	return user, nil
}

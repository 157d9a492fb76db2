// Package store provides the in-memory collections backing the API. All
// state is volatile: a process restart clears every user and plan. Each store
// serializes access with a single mutex because id assignment and uniqueness
// checks are check-then-act sequences.
package store

import (
	"errors"
	"sync"
	"time"

	"travel-planner-api/internal/models"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrMobileTaken  = errors.New("mobile number already registered")
	ErrUserNotFound = errors.New("user not found")
)

// UserStore is the in-memory account collection.
type UserStore struct {
	mu     sync.Mutex
	users  []*models.User
	nextID int64
}

func NewUserStore() *UserStore {
	return &UserStore{nextID: 1}
}

// Create assigns the next sequential id and stores the user. The duplicate
// checks happen under the same lock as the insert, so two concurrent
// registrations with the same email cannot both succeed.
func (s *UserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if user.Email != "" && u.Email == user.Email {
			return ErrEmailTaken
		}
		if user.Mobile != "" && u.Mobile == user.Mobile {
			return ErrMobileTaken
		}
	}

	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.nextID++
	s.users = append(s.users, user)
	return nil
}

func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *UserStore) FindByMobile(mobile string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Mobile == mobile {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *UserStore) FindByID(id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

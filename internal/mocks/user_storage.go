package mocks

import (
	"strconv"
	"sync"

	"github.com/VitaminP8/bloggery/graph/model"
	"github.com/VitaminP8/bloggery/internal/apperr"
)

type MockUserStorage struct {
	mu        sync.Mutex
	users     map[string]*model.User
	passwords map[string]string // id -> пароль открытым текстом (только для тестов)
}

func NewMockUserStorage() *MockUserStorage {
	return &MockUserStorage{
		users:     make(map[string]*model.User),
		passwords: make(map[string]string),
	}
}

func (m *MockUserStorage) RegisterUser(email, name, password string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return nil, apperr.Conflict("User exists already!")
		}
	}

	id := strconv.Itoa(len(m.users) + 1)
	user := &model.User{
		ID:    id,
		Email: email,
		Name:  name,
	}
	m.users[id] = user
	m.passwords[id] = password

	return user, nil
}

func (m *MockUserStorage) LoginUser(email, password string) (*model.AuthData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, u := range m.users {
		if u.Email == email {
			if m.passwords[id] != password {
				return nil, apperr.Unauthenticated("Wrong password")
			}
			return &model.AuthData{
				Token:  "jwt-token-for-user-" + id,
				UserID: id,
			}, nil
		}
	}

	return nil, apperr.Unauthenticated("User not found")
}

func (m *MockUserStorage) GetUserById(id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	return user, nil
}

func (m *MockUserStorage) UpdateStatus(id, status string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, apperr.NotFound("Could not find user.")
	}
	user.Status = status
	return user, nil
}

// AddUser кладет пользователя с заданным id напрямую (подготовка теста)
func (m *MockUserStorage) AddUser(id, email, name string) *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	user := &model.User{ID: id, Email: email, Name: name}
	m.users[id] = user
	return user
}

package memory

import (
	"strconv"
	"sync"

	"github.com/VitaminP8/bloggery/graph/model"
	"github.com/VitaminP8/bloggery/internal/apperr"
	"github.com/VitaminP8/bloggery/internal/auth"

	"golang.org/x/crypto/bcrypt"
)

type UserMemoryStorage struct {
	mu        sync.Mutex
	users     map[string]*model.User // id -> пользователь
	byEmail   map[string]string      // email -> id
	passwords map[string]string      // id -> bcrypt-хеш
	nextId    int
}

func NewUserMemoryStorage() *UserMemoryStorage {
	return &UserMemoryStorage{
		users:     make(map[string]*model.User),
		byEmail:   make(map[string]string),
		passwords: make(map[string]string),
		nextId:    1,
	}
}

func (s *UserMemoryStorage) RegisterUser(email, name, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.byEmail[email]
	if exists {
		return nil, apperr.Conflict("User exists already!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("failed to hash password: " + err.Error())
	}

	id := strconv.Itoa(s.nextId)
	s.nextId++

	user := &model.User{
		ID:    id,
		Email: email,
		Name:  name,
	}

	s.users[id] = user
	s.byEmail[email] = id
	s.passwords[id] = string(hashedPassword)

	return user, nil
}

func (s *UserMemoryStorage) LoginUser(email, password string) (*model.AuthData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.byEmail[email]
	if !exists {
		return nil, apperr.Unauthenticated("User not found")
	}
	user := s.users[id]

	err := bcrypt.CompareHashAndPassword([]byte(s.passwords[id]), []byte(password))
	if err != nil {
		return nil, apperr.Unauthenticated("Wrong password")
	}

	userIDInt, err := strconv.Atoi(user.ID)
	if err != nil {
		return nil, apperr.Internal("invalid user id: " + user.ID)
	}

	token, err := auth.SignToken(uint(userIDInt), user.Email)
	if err != nil {
		return nil, apperr.Internal(err.Error())
	}

	return &model.AuthData{Token: token, UserID: user.ID}, nil
}

func (s *UserMemoryStorage) GetUserById(id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[id]
	if !exists {
		return nil, apperr.NotFound("User not found")
	}

	// копия, чтобы вызывающий не менял состояние хранилища напрямую
	u := *user
	return &u, nil
}

func (s *UserMemoryStorage) UpdateStatus(id, status string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[id]
	if !exists {
		return nil, apperr.NotFound("Could not find user.")
	}

	user.Status = status

	u := *user
	return &u, nil
}

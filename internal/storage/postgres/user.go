package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/VitaminP8/bloggery/graph/model"
	"github.com/VitaminP8/bloggery/internal/apperr"
	"github.com/VitaminP8/bloggery/internal/auth"
	"github.com/VitaminP8/bloggery/models"

	"golang.org/x/crypto/bcrypt"
)

type UserPostgresStorage struct{}

func NewUserPostgresStorage() *UserPostgresStorage {
	return &UserPostgresStorage{}
}

// parseUserID - строковый id не должен попадать в SQL-условие как есть.
// Всё, что не число - несуществующий пользователь
func parseUserID(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, apperr.NotFound("User not found")
	}
	return uint(n), nil
}

// isDuplicateErr распознает нарушение уникальности email: две одновременные
// регистрации проходят проверку до вставки, ловит вторую только constraint
func isDuplicateErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}

func (s *UserPostgresStorage) RegisterUser(email, name, password string) (*model.User, error) {
	// email уникален - проверяем до вставки
	var existUser models.User
	err := DB.Where("email = ?", email).First(&existUser).Error
	if err == nil {
		return nil, apperr.Conflict("User exists already!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("failed to hash password: " + err.Error())
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     name,
	}

	err = DB.Create(user).Error
	if err != nil {
		if isDuplicateErr(err) {
			return nil, apperr.Conflict("User exists already!")
		}
		return nil, apperr.Internal("failed to create user: " + err.Error())
	}

	return toModelUser(user), nil
}

func (s *UserPostgresStorage) LoginUser(email, password string) (*model.AuthData, error) {
	var user models.User
	err := DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, apperr.Unauthenticated("User not found")
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return nil, apperr.Unauthenticated("Wrong password")
	}

	token, err := auth.SignToken(user.ID, user.Email)
	if err != nil {
		return nil, apperr.Internal(err.Error())
	}

	return &model.AuthData{
		Token:  token,
		UserID: fmt.Sprint(user.ID),
	}, nil
}

func (s *UserPostgresStorage) GetUserById(id string) (*model.User, error) {
	userID, err := parseUserID(id)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = DB.First(&user, userID).Error
	if err != nil {
		return nil, apperr.NotFound("User not found")
	}

	return toModelUser(&user), nil
}

func (s *UserPostgresStorage) UpdateStatus(id, status string) (*model.User, error) {
	userID, err := parseUserID(id)
	if err != nil {
		return nil, apperr.NotFound("Could not find user.")
	}

	var user models.User
	err = DB.First(&user, userID).Error
	if err != nil {
		return nil, apperr.NotFound("Could not find user.")
	}

	user.Status = status
	err = DB.Save(&user).Error
	if err != nil {
		return nil, apperr.Internal("could not update status: " + err.Error())
	}

	return toModelUser(&user), nil
}

func toModelUser(user *models.User) *model.User {
	return &model.User{
		ID:     fmt.Sprint(user.ID),
		Email:  user.Email,
		Name:   user.Name,
		Status: user.Status,
	}
}

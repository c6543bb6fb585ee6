package user

import (
	"github.com/VitaminP8/bloggery/graph/model"
)

type UserStorage interface {
	RegisterUser(email, name, password string) (*model.User, error)
	LoginUser(email, password string) (*model.AuthData, error) // JWT
	GetUserById(id string) (*model.User, error)
	UpdateStatus(id, status string) (*model.User, error)
}

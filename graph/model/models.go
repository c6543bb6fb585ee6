package model

import "time"

type User struct {
	ID     string
	Email  string
	Name   string
	Status string
}

type Post struct {
	ID        string
	Title     string
	Content   string
	ImageURL  string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthData - ответ login: токен сессии и id пользователя
type AuthData struct {
	Token  string
	UserID string
}

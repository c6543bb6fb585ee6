package models

import "github.com/jinzhu/gorm"

type User struct {
	gorm.Model
	Email    string `gorm:"unique"`
	Password string
	Name     string
	Status   string
	Posts    []Post `gorm:"foreignkey:UserID"`
}

type Post struct {
	gorm.Model
	Title    string
	Content  string
	ImageURL string
	UserID   uint
}

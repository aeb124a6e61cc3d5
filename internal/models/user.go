package models

import (
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null" validate:"required,email"`
	Password     string `gorm:"not null" validate:"required,min=8"`
	Name         string `gorm:"not null" validate:"required,min=2,max=150"`
	Role         string `gorm:"default:'user'" validate:"oneof=user admin"`
	Status       string `gorm:"default:'active'"`
	TokenVersion int    `gorm:"default:1"`
}

// Validate runs struct-tag validation on the user.
func (u *User) Validate() error {
	v := validator.New()
	return v.Struct(u)
}

// BeforeCreate rejects invalid users before they reach the store,
// whichever code path built them.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	return u.Validate()
}

// CreateUserInput is the registration request body.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

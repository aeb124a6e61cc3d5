package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validUser() *User {
	return &User{
		Name:     "Jordan Example",
		Email:    "jordan@example.com",
		Password: "$2a$10$abcdefghijklmnopqrstuvwxyz0123456789abcdefghijklmnopq",
		Role:     "user",
	}
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*User)
		valid  bool
	}{
		{"valid user", func(u *User) {}, true},
		{"admin role", func(u *User) { u.Role = "admin" }, true},
		{"missing email", func(u *User) { u.Email = "" }, false},
		{"malformed email", func(u *User) { u.Email = "not-an-email" }, false},
		{"short name", func(u *User) { u.Name = "J" }, false},
		{"unknown role", func(u *User) { u.Role = "superuser" }, false},
		{"short password", func(u *User) { u.Password = "short" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(u)
			err := u.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

// The create hook runs the same validation, so a bad user cannot be
// persisted even by a caller that skips request-level checks.
func TestUserBeforeCreate(t *testing.T) {
	u := validUser()
	assert.NoError(t, u.BeforeCreate(nil))

	u.Email = "not-an-email"
	assert.Error(t, u.BeforeCreate(nil))
}

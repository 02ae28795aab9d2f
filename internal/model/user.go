package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents an authenticated user in the system.
// Users are created by seeding and never mutated through the API.
type User struct {
	BaseModel
	Email    string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password string     `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Name     string     `gorm:"type:varchar(255)" json:"name" validate:"required"`
	Role     Role       `gorm:"type:varchar(30);not null" json:"role"`
	OutletID *uuid.UUID `gorm:"type:uuid;index" json:"outlet_id,omitempty"`
	Outlet   *Outlet    `gorm:"foreignKey:OutletID" json:"outlet,omitempty"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Role   Role      `json:"role"`
	Outlet *Outlet   `json:"outlet,omitempty"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Outlet: u.Outlet,
	}
}

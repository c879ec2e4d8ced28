package dto

import (
	"time"

	"github.com/google/uuid"
)

type AddressInput struct {
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	Landmarks string `json:"landmarks"`
}

type RegisterCustomerRequest struct {
	Name           string        `json:"name" validate:"required"`
	Email          string        `json:"email" validate:"required,email"`
	Phone          string        `json:"phone"`
	Password       string        `json:"password" validate:"required,min=6"`
	Address        *AddressInput `json:"address"`
	ProfilePicture string        `json:"profilePicture"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateCustomerRequest struct {
	Name           string        `json:"name"`
	Email          string        `json:"email" validate:"omitempty,email"`
	Phone          string        `json:"phone"`
	Password       string        `json:"password" validate:"omitempty,min=6"`
	Address        *AddressInput `json:"address"`
	ProfilePicture string        `json:"profilePicture"`
}

type ReactivationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ConfirmReactivationRequest struct {
	Token string `json:"token" validate:"required"`
}

type CustomerResponse struct {
	Id             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone,omitempty"`
	Address        *AddressInput `json:"address,omitempty"`
	ProfilePicture string        `json:"profilePicture,omitempty"`
	IsActive       bool          `json:"isActive"`
	LastLogin      *time.Time    `json:"lastLogin,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
}

type LoginResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// AuthResponse carries the signed token alongside the slim account summary.
type AuthResponse struct {
	Token string        `json:"token"`
	User  LoginResponse `json:"user"`
}

package dto

import "github.com/google/uuid"

// LoginForm arrives form-encoded on POST /auth/token, OAuth2
// password-grant style.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type CreateUserDTO struct {
	Username    string `json:"username"     validate:"required,min=1,max=50"`
	Email       string `json:"email"        validate:"required,email,max=50"`
	FirstName   string `json:"first_name"   validate:"omitempty,min=1,max=50"`
	LastName    string `json:"last_name"    validate:"omitempty,min=1,max=50"`
	Password    string `json:"password"     validate:"required,min=1,max=50"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=1,max=50"`
}

// UpdateUserDTO carries a partial profile update; nil means "leave as is".
type UpdateUserDTO struct {
	Username    *string `json:"username"     validate:"omitempty,min=1,max=50"`
	Email       *string `json:"email"        validate:"omitempty,email,max=50"`
	FirstName   *string `json:"first_name"   validate:"omitempty,min=1,max=50"`
	LastName    *string `json:"last_name"    validate:"omitempty,min=1,max=50"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=1,max=50"`
	IsActive    *bool   `json:"is_active"`
}

type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=1,max=50"`
}

type CreateTodoDTO struct {
	Title       string `json:"title"       validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"required,min=1,max=100"`
	Priority    int    `json:"priority"    validate:"omitempty,gte=1,lte=5"`
	Complete    bool   `json:"complete"`
}

// UpdateTodoDTO carries a partial update; nil means "leave as is".
type UpdateTodoDTO struct {
	Title       *string `json:"title"       validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,min=1,max=100"`
	Priority    *int    `json:"priority"    validate:"omitempty,gte=1,lte=5"`
	Complete    *bool   `json:"complete"`
}

type CreateAddressDTO struct {
	Address1   string `json:"address1"   validate:"required,min=1,max=200"`
	Address2   string `json:"address2"   validate:"omitempty,min=1,max=200"`
	City       string `json:"city"       validate:"required,min=1,max=50"`
	State      string `json:"state"      validate:"required,min=1,max=50"`
	Country    string `json:"country"    validate:"required,min=1,max=50"`
	PostalCode string `json:"postalcode" validate:"required,min=1,max=20"`
	AptNum     *int   `json:"apt_num"`
}

type BookDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"       validate:"required,min=1,max=100"`
	Author      string    `json:"author"      validate:"required,min=1,max=100"`
	Description string    `json:"description" validate:"omitempty,min=1,max=200"`
	Rating      int       `json:"rating"      validate:"gte=0,lte=100"`
}

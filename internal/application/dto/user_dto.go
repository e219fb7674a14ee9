package dto

import "time"

// RegisterRequest entrada para registro. InviteCode es opcional: si el
// cliente llegó por un enlace de invitación ya canjeado, se aplica justo
// después de crear la cuenta.
type RegisterRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	InviteCode string `json:"invite_code" validate:"omitempty"`
}

// LoginRequest entrada para login. InviteCode opcional, igual que en registro.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	InviteCode string `json:"invite_code" validate:"omitempty"`
}

// UpdateProfileRequest campos mutables del perfil. El email es inmutable
// después del registro y por eso no aparece aquí.
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse salida de register/login con token JWT.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

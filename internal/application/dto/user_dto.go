package dto

import "time"

// RegisterRequest entrada para crear un usuario (solo admin).
type RegisterRequest struct {
	Email               string `json:"email" validate:"required,email"`
	Password            string `json:"password" validate:"required,min=8"`
	FullName            string `json:"full_name"`
	Role                string `json:"role"` // default operador
	CanRequestPurchases bool   `json:"can_request_purchases"`
	CanApprovePurchases bool   `json:"can_approve_purchases"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token y usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRequest entrada para que un admin actualice un perfil.
// Punteros: solo se tocan los campos presentes.
type UpdateUserRequest struct {
	FullName            *string `json:"full_name"`
	Role                *string `json:"role"`
	IsActive            *bool   `json:"is_active"`
	CanRequestPurchases *bool   `json:"can_request_purchases"`
	CanApprovePurchases *bool   `json:"can_approve_purchases"`
}

// UserResponse salida de un perfil de usuario.
type UserResponse struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	FullName            string    `json:"full_name"`
	Role                string    `json:"role"`
	IsActive            bool      `json:"is_active"`
	CanRequestPurchases bool      `json:"can_request_purchases"`
	CanApprovePurchases bool      `json:"can_approve_purchases"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// UserListResponse listado de perfiles.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

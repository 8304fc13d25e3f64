package dto

import "time"

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Code string `json:"code" validate:"required"`
	Type string `json:"type"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Type      string    `json:"type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LocationListResponse listado de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
}

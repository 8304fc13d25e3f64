package entity

import "time"

// Location ubicación física de almacén (pasillo, rack, recepción...).
type Location struct {
	ID        string
	Code      string
	Type      string
	CreatedAt time.Time
}

package models

import "time"

// Model is the base model for all other models in the backend.
//
// Rows are deleted for real instead of being soft-deleted so that the
// ON DELETE CASCADE constraints of the schema apply on delete.
type Model struct {
	ID        uint64    `json:"id" gorm:"primaryKey" example:"4"`
	CreatedAt time.Time `json:"createdAt" example:"2024-06-02T19:28:44.491514Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-06-17T20:14:01.048145Z"`
}

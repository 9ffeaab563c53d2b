package models

import "time"

// Sample is the record kept by the sample store. ID is the key used to delete it.
type Sample struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

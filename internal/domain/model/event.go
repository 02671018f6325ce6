package model

import "time"

type Event struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	Location   string    `json:"location"`
	CategoryID int       `json:"category_id"`

	// Display name of the parent category, populated by list queries.
	CategoryName string `json:"category_name,omitempty"`
}

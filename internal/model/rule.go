package model

import "time"

// CategoryRule is a learned categorization rule. Rules are created or
// updated only when the user manually assigns a category to a transaction;
// they never expire on their own.
type CategoryRule struct {
	ID           string    `json:"id"`
	Pattern      string    `json:"pattern"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Applications int       `json:"applications"`
}

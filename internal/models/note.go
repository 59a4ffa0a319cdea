package models

import "time"

// Note is a markdown note with free-form tags
type Note struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetID returns the store ID of the note
func (n Note) GetID() string { return n.ID }

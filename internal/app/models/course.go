package models

import (
	"time"

	"github.com/google/uuid"
)

// Course represents a course published by an instructor.
type Course struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Image        string    `json:"image" db:"image"`
	Category     string    `json:"category" db:"category"`
	Price        float64   `json:"price" db:"price"`
	Learned      string    `json:"learned" db:"learned"`
	Video        []byte    `json:"-" db:"video"` // Nil when no video was ever uploaded
	InstructorID int64     `json:"instructorId" db:"instructor_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// HasVideo reports whether the course carries an uploaded video.
func (c *Course) HasVideo() bool {
	return c.Video != nil
}

// CoursePatch lists the fields of an update. A nil field is left untouched,
// a non-nil field is written even when it holds the zero value.
type CoursePatch struct {
	Title       *string
	Description *string
	Image       *string
	Category    *string
	Price       *float64
	Learned     *string
	Video       []byte // Replaces the stored video when non-nil
}

// IsEmpty reports whether the patch changes nothing.
func (p CoursePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Image == nil &&
		p.Category == nil && p.Price == nil && p.Learned == nil && p.Video == nil
}

// Apply writes the present fields of p onto c.
func (p CoursePatch) Apply(c *Course) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Image != nil {
		c.Image = *p.Image
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Price != nil {
		c.Price = *p.Price
	}
	if p.Learned != nil {
		c.Learned = *p.Learned
	}
	if p.Video != nil {
		c.Video = p.Video
	}
}

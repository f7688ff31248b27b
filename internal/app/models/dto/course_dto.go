package dto

import (
	"math"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/helpers"
	"github.com/yigit/coursehub/internal/pkg/media"
)

// --- Request DTOs ---

// CreateCourseRequest represents the data needed to create a new course.
// Accepted as JSON or multipart/form-data; in the multipart case the video
// is sent as the "video" file part instead of the base64 JSON field.
type CreateCourseRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,min=1,max=255" example:"Intro to Go"`
	Description string  `json:"description" form:"description" example:"A gentle introduction to Go"`
	Image       string  `json:"image" form:"image" validate:"max=2048" example:"https://cdn.example.com/go.png"`
	Category    string  `json:"category" form:"category" validate:"max=100" example:"programming"`
	Price       float64 `json:"price" form:"price" validate:"gte=0,lt=1e10" example:"49.99"`
	Learned     string  `json:"learned" form:"learned" example:"Goroutines, channels and interfaces"`
	Video       []byte  `json:"video,omitempty" form:"-" swaggertype:"string" format:"base64"`
}

// UpdateCourseRequest represents a partial update of a course. A field left
// out of the request stays unchanged; a field sent empty or zero is applied.
type UpdateCourseRequest struct {
	Title       *string  `json:"title" form:"title" validate:"omitempty,min=1,max=255" example:"Intro to Go, 2nd edition"`
	Description *string  `json:"description" form:"description"`
	Image       *string  `json:"image" form:"image" validate:"omitempty,max=2048"`
	Category    *string  `json:"category" form:"category" validate:"omitempty,max=100"`
	Price       *float64 `json:"price" form:"price" validate:"omitempty,gte=0,lt=1e10" example:"0"`
	Learned     *string  `json:"learned" form:"learned"`
	Video       []byte   `json:"video,omitempty" form:"-" swaggertype:"string" format:"base64"`
}

// ToModel builds the course to insert; the instructor is always the caller.
func (r *CreateCourseRequest) ToModel(instructorID int64) *models.Course {
	return &models.Course{
		Title:        r.Title,
		Description:  r.Description,
		Image:        r.Image,
		Category:     r.Category,
		Price:        roundPrice(r.Price),
		Learned:      r.Learned,
		Video:        r.Video,
		InstructorID: instructorID,
	}
}

// ToPatch converts the request into a course patch.
func (r *UpdateCourseRequest) ToPatch() models.CoursePatch {
	var price *float64
	if r.Price != nil {
		rounded := roundPrice(*r.Price)
		price = &rounded
	}
	return models.CoursePatch{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Category:    r.Category,
		Price:       price,
		Learned:     r.Learned,
		Video:       r.Video,
	}
}

// roundPrice rounds to whole cents, the precision prices are stored with.
func roundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}

// --- Response DTOs ---

// CourseResponse represents the data returned for a single course.
type CourseResponse struct {
	ID          string  `json:"id" example:"0b9c6f3e-2a51-4d4e-9a43-6f1d5f0f6a10"`
	Title       string  `json:"title" example:"Intro to Go"`
	Description string  `json:"description" example:"A gentle introduction to Go"`
	Image       string  `json:"image" example:"https://cdn.example.com/go.png"`
	Category    string  `json:"category" example:"programming"`
	Price       float64 `json:"price" example:"49.99"`
	Learned     string  `json:"learned" example:"Goroutines, channels and interfaces"`
	Video       *string `json:"video,omitempty" example:"data:video/mp4;base64,AAE="` // Omitted when no video was uploaded
	Instructor  int64   `json:"instructor" example:"42"`
	CreatedAt   string  `json:"createdAt" example:"2024-01-15T10:00:00Z"`
	UpdatedAt   string  `json:"updatedAt" example:"2024-01-16T11:30:00Z"`
}

// FromCourse converts a course model into its response representation,
// rendering a stored video as an inline data URL.
func FromCourse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:          c.ID.String(),
		Title:       c.Title,
		Description: c.Description,
		Image:       c.Image,
		Category:    c.Category,
		Price:       c.Price,
		Learned:     c.Learned,
		Video:       media.VideoDataURL(c.Video),
		Instructor:  c.InstructorID,
		CreatedAt:   helpers.FormatTimestamp(c.CreatedAt),
		UpdatedAt:   helpers.FormatTimestamp(c.UpdatedAt),
	}
}

// FromCourses converts a list of courses; the result is never nil.
func FromCourses(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, FromCourse(c))
	}
	return out
}

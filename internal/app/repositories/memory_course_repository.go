package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// MemoryCourseRepository keeps courses in process memory. It follows the
// same error contract as CourseRepository, including title uniqueness.
type MemoryCourseRepository struct {
	mu      sync.RWMutex
	courses map[uuid.UUID]*models.Course
	now     func() time.Time
}

// NewMemoryCourseRepository creates an empty in-memory course store.
func NewMemoryCourseRepository() *MemoryCourseRepository {
	return &MemoryCourseRepository{
		courses: make(map[uuid.UUID]*models.Course),
		now:     time.Now,
	}
}

func copyCourse(c *models.Course) *models.Course {
	cp := *c
	if c.Video != nil {
		cp.Video = append([]byte{}, c.Video...)
	}
	return &cp
}

// titleTaken must be called with mu held.
func (r *MemoryCourseRepository) titleTaken(title string, except uuid.UUID) bool {
	for id, c := range r.courses {
		if id != except && c.Title == title {
			return true
		}
	}
	return false
}

// CreateCourse stores a copy of course under a fresh id.
func (r *MemoryCourseRepository) CreateCourse(_ context.Context, course *models.Course) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.titleTaken(course.Title, uuid.Nil) {
		return nil, apperrors.ErrCourseTitleExists
	}

	stored := copyCourse(course)
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.CreatedAt = r.now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	r.courses[stored.ID] = stored
	return copyCourse(stored), nil
}

// GetCourseByID retrieves a single course by its ID.
func (r *MemoryCourseRepository) GetCourseByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return copyCourse(c), nil
}

// UpdateCourse applies patch to the stored course.
func (r *MemoryCourseRepository) UpdateCourse(_ context.Context, id uuid.UUID, patch models.CoursePatch) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	if patch.IsEmpty() {
		return copyCourse(c), nil
	}
	if patch.Title != nil && r.titleTaken(*patch.Title, id) {
		return nil, apperrors.ErrCourseTitleExists
	}

	patch.Apply(c)
	c.UpdatedAt = r.now().UTC()
	return copyCourse(c), nil
}

// DeleteCourse removes a course by its ID.
func (r *MemoryCourseRepository) DeleteCourse(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *MemoryCourseRepository) list(match func(*models.Course) bool) []*models.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Course, 0)
	for _, c := range r.courses {
		if match(c) {
			out = append(out, copyCourse(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// GetAllCourses retrieves every course, oldest first.
func (r *MemoryCourseRepository) GetAllCourses(_ context.Context) ([]*models.Course, error) {
	return r.list(func(*models.Course) bool { return true }), nil
}

// SearchCoursesByTitle retrieves courses whose title contains query, ignoring case.
func (r *MemoryCourseRepository) SearchCoursesByTitle(_ context.Context, query string) ([]*models.Course, error) {
	q := strings.ToLower(query)
	return r.list(func(c *models.Course) bool {
		return strings.Contains(strings.ToLower(c.Title), q)
	}), nil
}

// GetCoursesByInstructor retrieves the courses owned by an instructor.
func (r *MemoryCourseRepository) GetCoursesByInstructor(_ context.Context, instructorID int64) ([]*models.Course, error) {
	return r.list(func(c *models.Course) bool { return c.InstructorID == instructorID }), nil
}

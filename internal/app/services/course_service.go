package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// CourseRepository is the record store the course service works against.
// *repositories.CourseRepository satisfies it.
type CourseRepository interface {
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, patch models.CoursePatch) (*models.Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	SearchCoursesByTitle(ctx context.Context, query string) ([]*models.Course, error)
	GetCoursesByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error)
}

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, caller models.Caller, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	UpdateCourse(ctx context.Context, caller models.Caller, id uuid.UUID, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, caller models.Caller, id uuid.UUID) error
	GetAllCourses(ctx context.Context) ([]dto.CourseResponse, error)
	GetCourseByID(ctx context.Context, id uuid.UUID) (*dto.CourseResponse, error)
	SearchCourses(ctx context.Context, query string) ([]dto.CourseResponse, error)
	GetCoursesByInstructor(ctx context.Context, instructorID int64) ([]dto.CourseResponse, error)
}

// CourseServiceConfig holds the tunables of the course service
type CourseServiceConfig struct {
	EmptyInstructorList string // config.EmptyListNotFound or config.EmptyListEmpty
	MaxVideoBytes       int64  // 0 disables the check
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo   CourseRepository
	authzService *auth.AuthorizationService
	cfg          CourseServiceConfig
	logger       zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo CourseRepository,
	authzService *auth.AuthorizationService,
	cfg CourseServiceConfig,
	logger zerolog.Logger,
) CourseService {
	if cfg.EmptyInstructorList == "" {
		cfg.EmptyInstructorList = config.EmptyListNotFound
	}
	return &courseServiceImpl{
		courseRepo:   courseRepo,
		authzService: authzService,
		cfg:          cfg,
		logger:       logger,
	}
}

// CreateCourse stores a new course owned by the caller
func (s *courseServiceImpl) CreateCourse(ctx context.Context, caller models.Caller, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.ErrCourseTitleRequired
	}
	if err := s.checkVideoSize(req.Video); err != nil {
		return nil, err
	}

	created, err := s.courseRepo.CreateCourse(ctx, req.ToModel(caller.UserID))
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().
		Str("courseID", created.ID.String()).
		Int64("instructorID", created.InstructorID).
		Bool("hasVideo", created.HasVideo()).
		Msg("Course created")

	resp := dto.FromCourse(created)
	return &resp, nil
}

// UpdateCourse applies a partial update after checking the caller may modify the course.
// A missing course or a foreign caller is reported before any problem with the fields.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, caller models.Caller, id uuid.UUID, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	existing, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, wrapLookupError(err, "error getting course for update")
	}
	if err := s.authzService.ValidateCourseOwnership(existing, caller); err != nil {
		return nil, err
	}

	patch := req.ToPatch()
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, apperrors.ErrCourseTitleRequired
	}
	if err := s.checkVideoSize(patch.Video); err != nil {
		return nil, err
	}

	updated, err := s.courseRepo.UpdateCourse(ctx, id, patch)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConflict, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	s.logger.Info().
		Str("courseID", id.String()).
		Int64("callerID", caller.UserID).
		Msg("Course updated")

	resp := dto.FromCourse(updated)
	return &resp, nil
}

// DeleteCourse removes a course after checking the caller may modify it
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, caller models.Caller, id uuid.UUID) error {
	existing, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return wrapLookupError(err, "error getting course for delete")
	}
	if err := s.authzService.ValidateCourseOwnership(existing, caller); err != nil {
		return err
	}

	if err := s.courseRepo.DeleteCourse(ctx, id); err != nil {
		return wrapLookupError(err, "error deleting course")
	}

	s.logger.Info().
		Str("courseID", id.String()).
		Int64("callerID", caller.UserID).
		Msg("Course deleted")
	return nil
}

// GetAllCourses retrieves every course
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.courseRepo.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting courses: %w", err)
	}
	return dto.FromCourses(courses), nil
}

// GetCourseByID retrieves a single course
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id uuid.UUID) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, wrapLookupError(err, "error getting course")
	}
	resp := dto.FromCourse(course)
	return &resp, nil
}

// SearchCourses retrieves courses whose title contains query, ignoring case
func (s *courseServiceImpl) SearchCourses(ctx context.Context, query string) ([]dto.CourseResponse, error) {
	if query == "" {
		return nil, apperrors.ErrEmptySearchQuery
	}
	courses, err := s.courseRepo.SearchCoursesByTitle(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}
	return dto.FromCourses(courses), nil
}

// GetCoursesByInstructor retrieves an instructor's courses. Whether an empty
// result is an error depends on CourseServiceConfig.EmptyInstructorList.
func (s *courseServiceImpl) GetCoursesByInstructor(ctx context.Context, instructorID int64) ([]dto.CourseResponse, error) {
	courses, err := s.courseRepo.GetCoursesByInstructor(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error getting courses for instructor %d: %w", instructorID, err)
	}
	if len(courses) == 0 && s.cfg.EmptyInstructorList == config.EmptyListNotFound {
		return nil, apperrors.ErrNoCoursesForInstructor
	}
	return dto.FromCourses(courses), nil
}

func (s *courseServiceImpl) checkVideoSize(video []byte) error {
	if s.cfg.MaxVideoBytes > 0 && int64(len(video)) > s.cfg.MaxVideoBytes {
		return apperrors.ErrVideoTooLarge
	}
	return nil
}

// wrapLookupError passes not-found errors through untouched and wraps the rest.
func wrapLookupError(err error, msg string) error {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}

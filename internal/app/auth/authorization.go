package auth

import (
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// AuthorizationService decides which callers may change which courses
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// CanModifyCourse reports whether the caller owns the course or is an admin.
func (s *AuthorizationService) CanModifyCourse(course *models.Course, caller models.Caller) bool {
	if course == nil {
		return false
	}
	return caller.IsAdmin() || course.InstructorID == caller.UserID
}

// ValidateCourseOwnership returns ErrNotAuthorizedToModify unless CanModifyCourse allows the change.
// A nil course is reported as not found.
func (s *AuthorizationService) ValidateCourseOwnership(course *models.Course, caller models.Caller) error {
	if course == nil {
		return apperrors.ErrCourseNotFound
	}
	if s.CanModifyCourse(course, caller) {
		return nil
	}
	logger.Warn().
		Int64("callerID", caller.UserID).
		Str("role", string(caller.Role)).
		Str("courseID", course.ID.String()).
		Msg("Caller attempted to modify a course it does not own")
	return apperrors.ErrNotAuthorizedToModify
}

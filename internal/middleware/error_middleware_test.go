package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    dto.ErrorCode
		wantMessage string
	}{
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found"},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrNoCoursesForInstructor), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "No courses found for this instructor"},
		{"duplicate title", apperrors.ErrCourseTitleExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Course already exists"},
		{"forbidden", apperrors.ErrNotAuthorizedToModify, http.StatusForbidden, dto.ErrorCodeForbidden, "Not authorized to modify this course"},
		{"validation", apperrors.ErrVideoTooLarge, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Video exceeds the maximum upload size"},
		{"bad id", apperrors.ErrInvalidCourseID, http.StatusBadRequest, dto.ErrorCodeInvalidRequest, "Invalid course ID"},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) { HandleAPIError(c, tt.err) })

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Success || resp.Error == nil {
				t.Fatalf("not an error envelope: %s", rec.Body.String())
			}
			if resp.Error.Code != tt.wantCode || resp.Message != tt.wantMessage {
				t.Fatalf("got code=%s message=%q, want code=%s message=%q", resp.Error.Code, resp.Message, tt.wantCode, tt.wantMessage)
			}
		})
	}
}

func TestHandleAPIErrorUnexpectedIncludesDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) { HandleAPIError(c, fmt.Errorf("error creating course: %w", errors.New("disk full"))) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Details != "error creating course: disk full" {
		t.Fatalf("unexpected details: %v", resp.Error.Details)
	}
}

func TestHandleAPIErrorValidationDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	err := apperrors.NewValidationError("Validation failed").WithDetails(map[string]interface{}{"title": "title is required"})

	r := gin.New()
	r.GET("/", func(c *gin.Context) { HandleAPIError(c, err) })
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Details["title"] != "title is required" {
		t.Fatalf("unexpected details: %s", rec.Body.String())
	}
}

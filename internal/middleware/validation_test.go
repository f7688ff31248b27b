package middleware

import (
	"errors"
	"testing"

	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

func TestValidateStruct(t *testing.T) {
	if err := ValidateStruct(&dto.CreateCourseRequest{Title: "Go", Price: 1}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	err := ValidateStruct(&dto.CreateCourseRequest{Price: -1})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var ce *apperrors.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CustomError, got %T", err)
	}
	if ce.Details["title"] != "title is required" {
		t.Fatalf("unexpected title detail: %v", ce.Details)
	}
	if _, ok := ce.Details["price"]; !ok {
		t.Fatalf("missing price detail: %v", ce.Details)
	}
}

func TestValidateStructUpdateAllowsOmittedFields(t *testing.T) {
	if err := ValidateStruct(&dto.UpdateCourseRequest{}); err != nil {
		t.Fatalf("empty update rejected: %v", err)
	}
	negative := -5.0
	if err := ValidateStruct(&dto.UpdateCourseRequest{Price: &negative}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected negative price to fail, got %v", err)
	}
}

func TestValidateStructPriceUpperBound(t *testing.T) {
	err := ValidateStruct(&dto.CreateCourseRequest{Title: "Go", Price: 1e10})
	var ce *apperrors.CustomError
	if !errors.As(err, &ce) || !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ce.Details["price"] != "price must be less than 1e10" {
		t.Fatalf("unexpected price detail: %v", ce.Details)
	}

	if err := ValidateStruct(&dto.CreateCourseRequest{Title: "Go", Price: 9999999999.99}); err != nil {
		t.Fatalf("largest storable price rejected: %v", err)
	}
	tooHigh := 2e10
	if err := ValidateStruct(&dto.UpdateCourseRequest{Price: &tooHigh}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected update price bound, got %v", err)
	}
}

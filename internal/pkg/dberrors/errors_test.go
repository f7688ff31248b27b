package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{
			name:       "matching unique violation",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "courses_title_key"},
			constraint: "courses_title_key",
			want:       true,
		},
		{
			name:       "wrapped unique violation",
			err:        fmt.Errorf("insert course: %w", &pgconn.PgError{Code: "23505", ConstraintName: "courses_title_key"}),
			constraint: "courses_title_key",
			want:       true,
		},
		{
			name:       "other constraint",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "courses_pkey"},
			constraint: "courses_title_key",
			want:       false,
		},
		{
			name:       "other sqlstate",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "courses_title_key"},
			constraint: "courses_title_key",
			want:       false,
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			constraint: "courses_title_key",
			want:       false,
		},
		{
			name:       "nil",
			err:        nil,
			constraint: "courses_title_key",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateConstraintError(tt.err, tt.constraint); got != tt.want {
				t.Fatalf("IsDuplicateConstraintError() = %v, want %v", got, tt.want)
			}
		})
	}
}

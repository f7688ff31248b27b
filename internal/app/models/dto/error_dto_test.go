package dto

import "testing"

func TestValidationErrorsByField(t *testing.T) {
	verrs := NewValidationErrors().
		AddError("title", "title is required").
		AddError("price", "price must be greater than or equal to 0").
		AddError("title", "title must be at most 255 characters")

	if len(verrs.Errors) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(verrs.Errors))
	}
	for _, e := range verrs.Errors {
		if e.Code != ErrorCodeValidationFailed || e.Severity != ErrorSeverityError || e.Field == "" {
			t.Fatalf("unexpected entry: %+v", e)
		}
	}

	got := verrs.ByField()
	if len(got) != 2 {
		t.Fatalf("expected 2 fields, got %v", got)
	}
	if got["title"] != "title is required" {
		t.Fatalf("first title message should win, got %v", got["title"])
	}
}

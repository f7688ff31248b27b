package helpers

import (
	"testing"
	"time"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "go", want: "%go%"},
		{in: "o to G", want: "%o to G%"},
		{in: "100%", want: `%100\%%`},
		{in: "snake_case", want: `%snake\_case%`},
		{in: `C:\path`, want: `%C:\\path%`},
		{in: `\%`, want: `%\\\%%`},
	}

	for _, tt := range tests {
		if got := ContainsPattern(tt.in); got != tt.want {
			t.Fatalf("ContainsPattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90s", time.Minute); got != 90*time.Second {
		t.Fatalf("got=%v want=90s", got)
	}
	if got := ParseDuration("soon", time.Minute); got != time.Minute {
		t.Fatalf("invalid input should fall back to default, got=%v", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2024, 1, 15, 13, 0, 0, 0, loc)
	if got, want := FormatTimestamp(ts), "2024-01-15T10:00:00Z"; got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
	if got := FormatTimestamp(time.Time{}); got != "" {
		t.Fatalf("zero time should render empty, got=%q", got)
	}
}

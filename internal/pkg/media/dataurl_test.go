package media

import "testing"

func TestVideoDataURL(t *testing.T) {
	tests := []struct {
		name  string
		video []byte
		want  *string
	}{
		{name: "absent", video: nil, want: nil},
		{name: "two bytes", video: []byte{0x00, 0x01}, want: ptr("data:video/mp4;base64,AAE=")},
		{name: "uploaded but empty", video: []byte{}, want: ptr("data:video/mp4;base64,")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VideoDataURL(tt.video)
			switch {
			case tt.want == nil && got != nil:
				t.Fatalf("got=%q want=nil", *got)
			case tt.want != nil && got == nil:
				t.Fatalf("got=nil want=%q", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Fatalf("got=%q want=%q", *got, *tt.want)
			}
		})
	}
}

func TestDataURLMediaType(t *testing.T) {
	if got, want := DataURL("image/png", []byte("hi")), "data:image/png;base64,aGk="; got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func ptr(s string) *string { return &s }

package media

import (
	"encoding/base64"
	"strings"
)

// VideoMediaType is the media type course videos are advertised with.
const VideoMediaType = "video/mp4"

// DataURL encodes data as an inline RFC 2397 data URL with base64 payload.
func DataURL(mediaType string, data []byte) string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mediaType) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mediaType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// VideoDataURL renders a stored course video. It returns nil for a course
// without video so the field can be omitted from responses.
func VideoDataURL(video []byte) *string {
	if video == nil {
		return nil
	}
	s := DataURL(VideoMediaType, video)
	return &s
}

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	lgr := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestLogger(lgr))
	r.GET("/missing", func(c *gin.Context) {
		c.Set(ContextKeyUserID, int64(7))
		c.Status(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "req-123" {
		t.Fatalf("request id not echoed: %q", got)
	}

	var event map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("decode log event: %v (%s)", err, buf.String())
	}
	if event["level"] != "warn" || event["requestID"] != "req-123" || event["status"] != float64(404) {
		t.Fatalf("unexpected log event: %v", event)
	}
	if event["callerID"] != float64(7) {
		t.Fatalf("caller id missing from log event: %v", event)
	}
}

func TestRequestLoggerGeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Header().Get(RequestIDHeader) == "" {
		t.Fatal("expected generated request id")
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"success":false`)) {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
}

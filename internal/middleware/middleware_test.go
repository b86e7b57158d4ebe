package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/urbanhive/urbanhive-client/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"status error", apperrors.NewStatusError("test", http.StatusConflict, "Night watch is full"), http.StatusConflict, `{"error":"Night watch is full"}`},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrNotFound), http.StatusNotFound, `{"error":"lookup: resource not found"}`},
		{"validation", apperrors.NewValidationError("test", "bad id"), http.StatusBadRequest, `{"error":"bad id"}`},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			HandleAPIError(c, test.err)

			if rec.Code != test.status {
				t.Errorf("Status = %d, expected %d", rec.Code, test.status)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != test.body {
				t.Errorf("Body = %s, expected %s", got, test.body)
			}
		})
	}
}

func TestRequestLoggerEchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery(), RequestLogger(zerolog.Nop()))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("%s = %q, expected abc-123", RequestIDHeader, got)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("Expected a generated request id")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, expected 500", rec.Code)
	}
}

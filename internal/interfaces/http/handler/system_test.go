package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestSystemHandler_Health(t *testing.T) {
	tests := []struct {
		name   string
		ping   error
		status int
		body   string
	}{
		{"database reachable", nil, http.StatusOK, `"status":"healthy"`},
		{"database down", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable, `"database":"error"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSystemHandler(pingerFunc(func(context.Context) error { return tt.ping }))
			r := gin.New()
			r.GET("/health", h.Health)

			w := serve(r, http.MethodGet, "/health", nil)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

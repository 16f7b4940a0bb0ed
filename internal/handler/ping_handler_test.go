package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/ultimatebank/account-service/internal/middleware"
)

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", Ping)

	tests := []struct {
		name        string
		accept      string
		username    string
		wantBody    string
		wantJSON    bool
		contentType string
	}{
		{name: "no representation requested", wantBody: "pong", contentType: "text/plain"},
		{name: "any representation", accept: "*/*", wantBody: "pong", contentType: "text/plain"},
		{name: "plain text requested", accept: "text/plain", wantBody: "pong", contentType: "text/plain"},
		{name: "json requested", accept: "application/json", wantBody: `{"message":"pong"}`, wantJSON: true, contentType: "application/json"},
		{name: "json requested with identity", accept: "application/json", username: "nobody", wantBody: `{"message":"pong"}`, wantJSON: true, contentType: "application/json"},
		{name: "unknown user still gets pong", username: "nobody", wantBody: "pong", contentType: "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			if tt.username != "" {
				req.Header.Set(middleware.HeaderUsername, tt.username)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), tt.contentType)
			if tt.wantJSON {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			} else {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

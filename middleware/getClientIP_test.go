package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func requestFrom(remoteAddr string, headers map[string]string) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c.Request = req
	return c
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		want    string
	}{
		{
			"forwarded chain uses first hop",
			"10.0.0.1:4312",
			map[string]string{headerForwardedFor: "203.0.113.7, 10.0.0.2"},
			"203.0.113.7",
		},
		{
			"real ip when no forwarded header",
			"10.0.0.1:4312",
			map[string]string{headerRealIP: "203.0.113.9"},
			"203.0.113.9",
		},
		{
			"empty forwarded entry falls through to real ip",
			"10.0.0.1:4312",
			map[string]string{headerForwardedFor: " ,203.0.113.7", headerRealIP: "203.0.113.9"},
			"203.0.113.9",
		},
		{
			"remote addr with port",
			"192.0.2.4:5678",
			nil,
			"192.0.2.4",
		},
		{
			"remote addr without port",
			"192.0.2.4",
			nil,
			"192.0.2.4",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := getClientIP(requestFrom(tc.remote, tc.headers)); got != tc.want {
				t.Fatalf("getClientIP = %q, want %q", got, tc.want)
			}
		})
	}
}

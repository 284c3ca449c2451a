package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-agenda/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func authRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(cfg))
	r.GET("/who", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"shop": c.GetUint(ContextBarbershopID),
			"role": c.GetString(ContextUserRole),
			"pro":  c.GetUint(ContextProfessionalID),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}
	r := authRouter(cfg)
	exp := time.Now().Add(time.Hour).Unix()

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, "missing_authorization_header"},
		{"not bearer", "Basic abc", http.StatusUnauthorized, "invalid_authorization_header"},
		{"bad signature", "Bearer " + sign(t, "other", jwt.MapClaims{"sub": 1, "barbershopId": 2, "exp": exp}), http.StatusUnauthorized, "invalid_token"},
		{"no tenant", "Bearer " + sign(t, "s3cret", jwt.MapClaims{"sub": 1, "exp": exp}), http.StatusUnauthorized, "invalid_token_payload"},
		{"professional without id", "Bearer " + sign(t, "s3cret", jwt.MapClaims{"sub": 1, "barbershopId": 2, "role": "PROFESSIONAL", "exp": exp}), http.StatusUnauthorized, "invalid_token_payload"},
		{"unknown role", "Bearer " + sign(t, "s3cret", jwt.MapClaims{"sub": 1, "barbershopId": 2, "role": "CLIENT", "exp": exp}), http.StatusUnauthorized, "invalid_token_payload"},
		{"tenant", "Bearer " + sign(t, "s3cret", jwt.MapClaims{"sub": 1, "barbershopId": 2, "role": "tenant", "exp": exp}), http.StatusOK, `"role":"TENANT"`},
		{"professional", "Bearer " + sign(t, "s3cret", jwt.MapClaims{"sub": 1, "barbershopId": 2, "role": "PROFESSIONAL", "professionalId": 7, "exp": exp}), http.StatusOK, `"pro":7`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/who", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.body)
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Request-Id")
}

func TestCORSAllowList(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example/", " https://admin.example"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := map[string]string{
		"https://app.example":   "https://app.example",
		"https://admin.example": "https://admin.example",
		"https://evil.example":  "",
	}
	for origin, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, origin)
		assert.Equal(t, want, w.Header().Get("Access-Control-Allow-Origin"), origin)
	}
}

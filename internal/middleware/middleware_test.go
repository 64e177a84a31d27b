package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spu-coder/my-ai-advisor/config"
	"github.com/spu-coder/my-ai-advisor/internal/model"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
	"github.com/spu-coder/my-ai-advisor/pkg/scope"
)

const testSecret = "test-secret"

func newTestMiddleware(t *testing.T, sec config.SecurityConfig) (Middleware, scope.Manager) {
	t.Helper()
	jwtManager, err := scope.New(scope.Config{SecretKey: testSecret, Issuer: "test", TTL: time.Minute})
	if err != nil {
		t.Fatalf("scope.New() error = %v", err)
	}
	return New(log.NewNop(), jwtManager, sec), jwtManager
}

func defaultSecurity() config.SecurityConfig {
	return config.SecurityConfig{
		RateLimitPerMin:     100,
		AuthRateLimitPerMin: 10,
		RateLimitWindow:     time.Minute,
		MaxRequestBytes:     1024,
	}
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw, jwtManager := newTestMiddleware(t, defaultSecurity())

	r := gin.New()
	r.GET("/me", mw.Auth(), func(c *gin.Context) {
		sc, ok := GetScope(c)
		ctxScope, ctxOK := model.ScopeFromContext(c.Request.Context())
		if !ok || !ctxOK || sc != ctxScope {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, "%s|%s|%v", sc.UserID, sc.Role, sc.IsDemo)
	})

	valid, err := jwtManager.Generate(scope.Payload{UserID: "S1", Role: "student", IsDemo: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"not bearer", "Basic abc", http.StatusUnauthorized, ""},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized, ""},
		{"valid token", "Bearer " + valid, http.StatusOK, "S1|student|true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(HeaderAuthorization, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw, jwtManager := newTestMiddleware(t, defaultSecurity())

	r := gin.New()
	r.POST("/admin", mw.Auth(), mw.RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for role, want := range map[string]int{"admin": http.StatusNoContent, "student": http.StatusForbidden} {
		t.Run(role, func(t *testing.T) {
			token, _ := jwtManager.Generate(scope.Payload{UserID: "u1", Role: role})
			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			req.Header.Set(HeaderAuthorization, "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != want {
				t.Errorf("status = %d, want %d", w.Code, want)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sec := defaultSecurity()
	sec.RateLimitPerMin = 3
	sec.AuthRateLimitPerMin = 1
	mw, _ := newTestMiddleware(t, sec)

	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		t.Fatalf("SetTrustedProxies() error = %v", err)
	}
	r.Use(mw.RateLimit())
	r.GET("/api/v1/chat", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/token", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(path, peer, forwarded string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = peer + ":4321"
		if forwarded != "" {
			req.Header.Set("X-Forwarded-For", forwarded)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("default bucket", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			if w := do("/api/v1/chat", "1.1.1.1", ""); w.Code != http.StatusOK {
				t.Fatalf("request %d: status = %d", i, w.Code)
			}
		}
		w := do("/api/v1/chat", "1.1.1.1", "")
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want 429", w.Code)
		}
		if w.Header().Get(HeaderRetryAfter) == "" {
			t.Error("missing Retry-After")
		}
		if !strings.Contains(w.Body.String(), MsgRateLimited) || !strings.Contains(w.Body.String(), "error_ar") {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("other client unaffected", func(t *testing.T) {
		if w := do("/api/v1/chat", "2.2.2.2", ""); w.Code != http.StatusOK {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("forwarded header does not open a new bucket", func(t *testing.T) {
		rejected := 0
		for i := 0; i < 20; i++ {
			w := do("/api/v1/chat", "203.0.113.7", fmt.Sprintf("10.0.0.%d", i))
			if w.Code == http.StatusTooManyRequests {
				rejected++
			}
		}
		if rejected != 17 {
			t.Errorf("rejected = %d of 20, want 17", rejected)
		}
	})

	t.Run("auth bucket", func(t *testing.T) {
		if w := do("/token", "3.3.3.3", ""); w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if w := do("/token", "3.3.3.3", ""); w.Code != http.StatusTooManyRequests {
			t.Errorf("status = %d, want 429", w.Code)
		}
	})
}

func TestRateLimitTrustedProxy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sec := defaultSecurity()
	sec.RateLimitPerMin = 1
	mw, _ := newTestMiddleware(t, sec)

	r := gin.New()
	if err := r.SetTrustedProxies([]string{"10.0.0.0/8"}); err != nil {
		t.Fatalf("SetTrustedProxies() error = %v", err)
	}
	r.Use(mw.RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(peer, forwarded string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = peer + ":4321"
		req.Header.Set("X-Forwarded-For", forwarded)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	// Behind the trusted proxy each forwarded client has its own bucket.
	if code := do("10.0.0.5", "9.9.9.9"); code != http.StatusOK {
		t.Fatalf("first client: status = %d", code)
	}
	if code := do("10.0.0.5", "8.8.8.8"); code != http.StatusOK {
		t.Fatalf("second client: status = %d", code)
	}
	if code := do("10.0.0.5", "9.9.9.9"); code != http.StatusTooManyRequests {
		t.Errorf("repeat client: status = %d, want 429", code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw, _ := newTestMiddleware(t, defaultSecurity())

	r := gin.New()
	r.Use(mw.SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	for k, v := range securityHeaders {
		if got := w.Header().Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestRequestSize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw, _ := newTestMiddleware(t, defaultSecurity())

	r := gin.New()
	r.Use(mw.RequestSize())
	r.POST("/", func(c *gin.Context) {
		if _, err := c.GetRawData(); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	t.Run("small body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("ok")))
		if w.Code != http.StatusOK {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("declared too large", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 2048))))
		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("status = %d, want 413", w.Code)
		}
		if !strings.Contains(w.Body.String(), MsgTooLarge) {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("undeclared too large", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 2048)))
		req.ContentLength = -1
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("status = %d, want 413", w.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw, _ := newTestMiddleware(t, defaultSecurity())

	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context())) })

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Body.String() != "req-1" || w.Header().Get(HeaderRequestID) != "req-1" {
			t.Errorf("body %q header %q", w.Body.String(), w.Header().Get(HeaderRequestID))
		}
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Body.String() == "" || w.Body.String() != w.Header().Get(HeaderRequestID) {
			t.Errorf("body %q header %q", w.Body.String(), w.Header().Get(HeaderRequestID))
		}
	})
}

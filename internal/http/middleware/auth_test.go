package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gorodok/go-market-backend/internal/domain"
)

// stubResolver maps one known token to a fixed caller; everything else is
// anonymous, like the real resolver.
type stubResolver struct {
	token  string
	caller domain.Caller
}

func (s stubResolver) ResolveIdentity(_ context.Context, raw string) domain.Caller {
	if raw == s.token {
		return s.caller
	}
	return domain.Anonymous
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":     "abc",
		"bearer abc":     "abc", // scheme is case-insensitive
		"BEARER  abc  ":  "abc",
		"Basic abc":      "",
		"Bearer":         "",
		"":               "",
		"  Bearer xyz  ": "xyz",
	}
	for in, want := range cases {
		if got := bearerToken(in); got != want {
			t.Fatalf("bearerToken(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestIdentity_SetsCaller(t *testing.T) {
	gin.SetMode(gin.TestMode)

	want := domain.Caller{UserID: 42, Admin: true}
	r := gin.New()
	r.Use(Identity(stubResolver{token: "good-token", caller: want}))
	var got domain.Caller
	r.GET("/x", func(c *gin.Context) {
		got = CallerFrom(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if got != want {
		t.Fatalf("caller = %+v; want %+v", got, want)
	}
}

func TestIdentity_UnusableTokenIsAnonymousNotRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Identity(stubResolver{token: "good-token"}))
	var got domain.Caller
	r.GET("/x", func(c *gin.Context) {
		got = CallerFrom(c)
		c.Status(http.StatusOK)
	})

	for _, header := range []string{"", "Bearer wrong", "Basic abc"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("header %q: status = %d; want 200", header, w.Code)
		}
		if got != domain.Anonymous {
			t.Fatalf("header %q: caller = %+v; want anonymous", header, got)
		}
	}
}

func TestCallerFrom_WithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CallerFrom(c); got != domain.Anonymous {
		t.Fatalf("caller = %+v; want anonymous", got)
	}

	// A foreign value under the key also falls back to anonymous.
	c.Set("caller", "not a caller")
	if got := CallerFrom(c); got != domain.Anonymous {
		t.Fatalf("caller = %+v; want anonymous", got)
	}
}

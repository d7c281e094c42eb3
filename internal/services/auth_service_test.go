package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gorodok/go-market-backend/internal/auth"
	"github.com/gorodok/go-market-backend/internal/domain"
	"github.com/gorodok/go-market-backend/internal/repo"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return &AuthService{
		DB:         newTestDB(t),
		Codec:      auth.NewCodec("test-access-secret", "test-refresh-secret", time.Minute, time.Hour),
		BcryptCost: bcrypt.MinCost,
	}
}

func TestAuthService_Register(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "  Anna  ", "Ivanova", "anna@example.com", "secret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == 0 || u.Name != "Anna" || u.Email != "anna@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.HashedPassword == "secret" {
		t.Fatalf("password stored in clear")
	}
	if u.IsAdmin {
		t.Fatalf("new account is admin")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	cases := [][3]string{
		{"", "a@example.com", "pw"},
		{"A", "", "pw"},
		{"A", "a@example.com", ""},
		{"   ", "a@example.com", "   "},
	}
	for _, c := range cases {
		if _, err := svc.Register(ctx, c[0], "", c[1], c[2]); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("Register(%q, %q, %q) err = %v; want ErrMissingFields", c[0], c[1], c[2], err)
		}
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "A", "", "a@example.com", "pw"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(ctx, "B", "", "a@example.com", "pw"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate Register err = %v; want ErrEmailTaken", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	if _, err := svc.Register(ctx, "A", "", "a@example.com", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	access, refresh, u, err := svc.Login(ctx, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if access == "" || refresh == "" || u == nil {
		t.Fatalf("incomplete login result")
	}

	claims, err := svc.Codec.ParseAccess(access)
	if err != nil || claims.UserID != u.ID || claims.Admin {
		t.Fatalf("access claims = (%+v, %v)", claims, err)
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	if _, err := svc.Register(ctx, "A", "", "a@example.com", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, _, err := svc.Login(ctx, "a@example.com", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("wrong password err = %v; want ErrBadCredentials", err)
	}
	if _, _, _, err := svc.Login(ctx, "nobody@example.com", "pw"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("unknown email err = %v; want ErrBadCredentials", err)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	u, _ := svc.Register(ctx, "A", "", "a@example.com", "pw")
	_, refresh, _, err := svc.Login(ctx, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	access, err := svc.Refresh(ctx, refresh)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	claims, err := svc.Codec.ParseAccess(access)
	if err != nil || claims.UserID != u.ID {
		t.Fatalf("refreshed access claims = (%+v, %v)", claims, err)
	}

	if _, err := svc.Refresh(ctx, "garbage"); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("garbage refresh err = %v; want ErrInvalidSession", err)
	}
	// An access token must not pass as a refresh token.
	if _, err := svc.Refresh(ctx, access); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("access-as-refresh err = %v; want ErrInvalidSession", err)
	}
}

func TestAuthService_Logout_RevokesBothTokens(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	svc.Register(ctx, "A", "", "a@example.com", "pw")
	access, refresh, _, err := svc.Login(ctx, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(ctx, access, refresh); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if got := svc.ResolveIdentity(ctx, access); got.Authenticated() {
		t.Fatalf("revoked access token still resolves: %+v", got)
	}
	if _, err := svc.Refresh(ctx, refresh); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("revoked refresh err = %v; want ErrInvalidSession", err)
	}

	if err := svc.Logout(ctx, "garbage", ""); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("garbage logout err = %v; want ErrInvalidSession", err)
	}
}

func TestAuthService_Logout_BadRefreshIgnored(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	svc.Register(ctx, "A", "", "a@example.com", "pw")
	access, _, _, err := svc.Login(ctx, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(ctx, access, "not-a-token"); err != nil {
		t.Fatalf("Logout with unparsable refresh: %v", err)
	}
}

func TestAuthService_ResolveIdentity(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	u, _ := svc.Register(ctx, "A", "", "a@example.com", "pw")
	access, _, _, err := svc.Login(ctx, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	caller := svc.ResolveIdentity(ctx, access)
	if caller.UserID != u.ID || caller.Admin {
		t.Fatalf("caller = %+v", caller)
	}

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if got := svc.ResolveIdentity(ctx, raw); got != domain.Anonymous {
			t.Fatalf("ResolveIdentity(%q) = %+v; want anonymous", raw, got)
		}
	}
}

func TestAuthService_ResolveIdentity_AdminClaimFixedAtIssuance(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	u, _ := svc.Register(ctx, "A", "", "a@example.com", "pw")
	access, _, _, err := svc.Login(ctx, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := repo.SetAdmin(ctx, svc.DB, u.ID, true); err != nil {
		t.Fatalf("SetAdmin: %v", err)
	}

	// The live token keeps the claim it was minted with.
	if got := svc.ResolveIdentity(ctx, access); got.Admin {
		t.Fatalf("promotion visible before re-login")
	}

	access2, _, _, err := svc.Login(ctx, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("second Login: %v", err)
	}
	if got := svc.ResolveIdentity(ctx, access2); !got.Admin {
		t.Fatalf("promotion invisible after re-login")
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	u, _ := svc.Register(ctx, "A", "", "a@example.com", "pw")

	got, avg, err := svc.CurrentUser(ctx, domain.Caller{UserID: u.ID})
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if got.ID != u.ID || avg != 0 {
		t.Fatalf("profile = (%+v, %v)", got, avg)
	}

	if _, _, err := svc.CurrentUser(ctx, domain.Anonymous); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("anonymous err = %v; want ErrUnauthorized", err)
	}
	if _, _, err := svc.CurrentUser(ctx, domain.Caller{UserID: 999}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("vanished account err = %v; want ErrUserNotFound", err)
	}
}

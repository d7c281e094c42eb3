package auth

import (
	"testing"
	"time"
)

func testCodec() *Codec {
	return NewCodec("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestIssueAccess_ParseRoundTrip(t *testing.T) {
	c := testCodec()

	token, jti, err := c.IssueAccess(42, true)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if token == "" || jti == "" {
		t.Fatalf("empty token or jti: token=%q jti=%q", token, jti)
	}

	claims, err := c.ParseAccess(token)
	if err != nil {
		t.Fatalf("ParseAccess: %v", err)
	}
	if claims.UserID != 42 || claims.TokenID != jti || !claims.Admin {
		t.Fatalf("claims mismatch: %+v (want user=42 jti=%s admin=true)", claims, jti)
	}
}

func TestIssueAccess_UniqueJTIs(t *testing.T) {
	c := testCodec()
	_, jti1, err := c.IssueAccess(1, false)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	_, jti2, err := c.IssueAccess(1, false)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if jti1 == jti2 {
		t.Fatalf("two tokens share a jti: %s", jti1)
	}
}

func TestParseAccess_RejectsRefreshToken(t *testing.T) {
	c := testCodec()

	// A refresh token is signed with a different secret; the access parser
	// must reject it outright.
	refresh, _, err := c.IssueRefresh(7, false)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}
	if _, err := c.ParseAccess(refresh); err != ErrInvalidToken {
		t.Fatalf("ParseAccess(refresh) error = %v; want ErrInvalidToken", err)
	}
	// And the refresh parser accepts it.
	if _, err := c.ParseRefresh(refresh); err != nil {
		t.Fatalf("ParseRefresh: %v", err)
	}
}

func TestParseAccess_Garbage(t *testing.T) {
	c := testCodec()
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := c.ParseAccess(raw); err != ErrInvalidToken {
			t.Fatalf("ParseAccess(%q) error = %v; want ErrInvalidToken", raw, err)
		}
	}
}

func TestParseAccess_Expired(t *testing.T) {
	c := NewCodec("s1", "s2", -time.Minute, time.Hour)
	token, _, err := c.IssueAccess(5, false)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, err := c.ParseAccess(token); err != ErrInvalidToken {
		t.Fatalf("expired token error = %v; want ErrInvalidToken", err)
	}
}

func TestClaims_AdminFixedAtIssuance(t *testing.T) {
	c := testCodec()

	// The admin flag travels inside the token; parsing returns what was
	// baked in at issuance, not the current database state.
	token, _, err := c.IssueAccess(9, false)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	claims, err := c.ParseAccess(token)
	if err != nil {
		t.Fatalf("ParseAccess: %v", err)
	}
	if claims.Admin {
		t.Fatalf("admin claim should be false as issued")
	}
}

package auth

import (
	"testing"
	"time"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	user, err := NewUser("hossein", "s3cret-pass", RoleAdmin)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}

	token, expiresAt, err := svc.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Error("token already expired")
	}

	userCtx, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userCtx.UserID != user.ID.String() {
		t.Errorf("UserID = %q, want %q", userCtx.UserID, user.ID)
	}
	if userCtx.Username != "hossein" {
		t.Errorf("Username = %q", userCtx.Username)
	}
	if !userCtx.IsAdmin {
		t.Error("admin flag not carried through claims")
	}
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(DefaultJWTConfig("secret-a"))
	verifier := NewJWTService(DefaultJWTConfig("secret-b"))

	user, err := NewUser("hossein", "s3cret-pass", RoleViewer)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}

	token, _, err := issuer.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("token signed with another secret accepted")
	}
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("malformed token accepted")
	}
}

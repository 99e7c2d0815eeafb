package auth

import (
	"context"
	"testing"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
)

type stubUserRepo struct {
	users map[string]*User
}

func newStubUserRepo(users ...*User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*User)}
	for _, u := range users {
		r.users[u.Username] = u
	}
	return r
}

func (r *stubUserRepo) Create(ctx context.Context, u *User) error {
	r.users[u.Username] = u
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, userID id.ID) (*User, error) {
	for _, u := range r.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", userID)
}

func (r *stubUserRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user", username)
}

func (r *stubUserRepo) Update(ctx context.Context, u *User) error {
	r.users[u.Username] = u
	return nil
}

func (r *stubUserRepo) List(ctx context.Context) ([]*User, error) {
	out := make([]*User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) Exists(ctx context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func newTestService(t *testing.T, users ...*User) *Service {
	t.Helper()
	jwtSvc := NewJWTService(DefaultJWTConfig("test-secret"))
	return NewService(newStubUserRepo(users...), jwtSvc, DefaultServiceConfig())
}

func mustUser(t *testing.T, username, password, role string) *User {
	t.Helper()
	u, err := NewUser(username, password, role)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	return u
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	user := mustUser(t, "hossein", "s3cret-pass", RoleAdmin)
	svc := newTestService(t, user)

	session, err := svc.Login(ctx, Credentials{Username: "hossein", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if session.AccessToken == "" {
		t.Error("empty access token")
	}
	if session.TokenType != "Bearer" {
		t.Errorf("TokenType = %q", session.TokenType)
	}
	if user.LastLoginAt == nil {
		t.Error("successful login not recorded")
	}
}

func TestService_Login_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, mustUser(t, "hossein", "s3cret-pass", RoleAdmin))

	_, errUnknown := svc.Login(ctx, Credentials{Username: "nobody", Password: "whatever"})
	_, errWrongPass := svc.Login(ctx, Credentials{Username: "hossein", Password: "wrong"})

	for _, err := range []error{errUnknown, errWrongPass} {
		appErr, ok := apperror.AsAppError(err)
		if !ok {
			t.Fatalf("expected AppError, got %v", err)
		}
		if appErr.Code != apperror.CodeUnauthorized {
			t.Errorf("code = %s, want %s", appErr.Code, apperror.CodeUnauthorized)
		}
	}
	if errUnknown.Error() != errWrongPass.Error() {
		t.Error("unknown-user and wrong-password errors differ, usernames can be probed")
	}
}

func TestService_Login_LocksAfterRepeatedFailures(t *testing.T) {
	ctx := context.Background()
	user := mustUser(t, "hossein", "s3cret-pass", RoleAdmin)
	svc := newTestService(t, user)

	for i := 0; i < svc.config.MaxLoginAttempts; i++ {
		_, _ = svc.Login(ctx, Credentials{Username: "hossein", Password: "wrong"})
	}

	if !user.IsLocked() {
		t.Fatal("account not locked after repeated failures")
	}

	// Correct password is rejected while the lock lasts.
	if _, err := svc.Login(ctx, Credentials{Username: "hossein", Password: "s3cret-pass"}); err == nil {
		t.Error("locked account logged in")
	}
}

func TestService_CreateUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	user, err := svc.CreateUser(ctx, "viewer1", "long-enough-pass", RoleViewer)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Role != RoleViewer {
		t.Errorf("role = %q", user.Role)
	}

	// Short password rejected.
	if _, err := svc.CreateUser(ctx, "viewer2", "short", RoleViewer); err == nil {
		t.Error("short password accepted")
	}

	// Duplicate username rejected.
	if _, err := svc.CreateUser(ctx, "viewer1", "long-enough-pass", RoleViewer); err == nil {
		t.Error("duplicate username accepted")
	}
}

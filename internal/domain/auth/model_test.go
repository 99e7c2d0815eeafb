package auth

import (
	"context"
	"testing"
	"time"
)

func TestNewUser_PasswordHashing(t *testing.T) {
	user, err := NewUser("hossein", "s3cret-pass", RoleAdmin)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}

	if user.PasswordHash == "s3cret-pass" {
		t.Fatal("password stored in plaintext")
	}
	if !user.CheckPassword("s3cret-pass") {
		t.Error("correct password rejected")
	}
	if user.CheckPassword("wrong-pass") {
		t.Error("wrong password accepted")
	}
	if !user.IsActive {
		t.Error("new user should be active")
	}
}

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *User)
		wantErr bool
	}{
		{"valid admin", func(u *User) {}, false},
		{"valid viewer", func(u *User) { u.Role = RoleViewer }, false},
		{"empty username", func(u *User) { u.Username = "" }, true},
		{"unknown role", func(u *User) { u.Role = "superuser" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser("hossein", "s3cret-pass", RoleAdmin)
			if err != nil {
				t.Fatalf("NewUser: %v", err)
			}
			tt.mutate(user)

			err = user.Validate(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUser_LockoutAfterFailedLogins(t *testing.T) {
	user, err := NewUser("hossein", "s3cret-pass", RoleAdmin)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}

	const maxAttempts = 3
	for i := 0; i < maxAttempts-1; i++ {
		user.RecordFailedLogin(maxAttempts, 15*time.Minute)
		if user.IsLocked() {
			t.Fatalf("locked after %d attempts", i+1)
		}
	}

	user.RecordFailedLogin(maxAttempts, 15*time.Minute)
	if !user.IsLocked() {
		t.Fatal("not locked after reaching the attempt limit")
	}
	if err := user.CanLogin(); err == nil {
		t.Error("CanLogin should fail while locked")
	}

	user.RecordSuccessfulLogin()
	if user.IsLocked() {
		t.Error("lock should clear after successful login")
	}
	if user.FailedLoginAttempts != 0 {
		t.Errorf("failed attempts = %d, want 0", user.FailedLoginAttempts)
	}
	if user.LastLoginAt == nil {
		t.Error("LastLoginAt not set")
	}
}

func TestUser_CanLogin_Disabled(t *testing.T) {
	user, err := NewUser("hossein", "s3cret-pass", RoleViewer)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	user.IsActive = false

	if err := user.CanLogin(); err == nil {
		t.Error("disabled account should not log in")
	}
}

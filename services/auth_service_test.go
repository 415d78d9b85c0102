package services

import (
	"testing"
	"time"

	"foodigo/entity"
	"foodigo/repository"
)

func authSvc(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(db, repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := authSvc(t)

	user, err := svc.Register(&RegisterIn{Name: "Jane", Email: "Jane@Example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "jane@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.Password == "secret123" {
		t.Error("password stored in plain text")
	}

	token, got, err := svc.Login("jane@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Error("empty token")
	}
	if got.ID != user.ID {
		t.Errorf("logged in as %d, want %d", got.ID, user.ID)
	}

	if _, _, err := svc.Login("jane@example.com", "wrong"); err == nil {
		t.Error("expected error for wrong password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := authSvc(t)

	if _, err := svc.Register(&RegisterIn{Name: "Jane", Email: "jane@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(&RegisterIn{Name: "Other", Email: "JANE@example.com", Password: "secret123"}); err == nil {
		t.Fatal("expected duplicate email error")
	}
}

func TestSocialLoginCreatesThenFinds(t *testing.T) {
	svc := authSvc(t)

	in := &SocialLoginIn{SocialID: "g-123", SocialType: "google", Email: "jane@example.com", Name: "Jane Doe"}

	_, user, err := svc.SocialLogin(in)
	if err != nil {
		t.Fatalf("first social login: %v", err)
	}
	if user.Password != "" {
		t.Error("social account should have an empty password")
	}

	_, again, err := svc.SocialLogin(in)
	if err != nil {
		t.Fatalf("second social login: %v", err)
	}
	if again.ID != user.ID {
		t.Errorf("second login created a new account: %d vs %d", again.ID, user.ID)
	}

	// an empty password account cannot use the password login
	if _, _, err := svc.Login("jane@example.com", ""); err == nil {
		t.Error("expected password login to fail for social-only account")
	}
}

func TestSocialLoginLinksExistingEmailAccount(t *testing.T) {
	svc := authSvc(t)

	user, err := svc.Register(&RegisterIn{Name: "Jane", Email: "jane@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	_, linked, err := svc.SocialLogin(&SocialLoginIn{
		SocialID: "g-123", SocialType: "google", Email: "jane@example.com",
	})
	if err != nil {
		t.Fatalf("social login: %v", err)
	}
	if linked.ID != user.ID {
		t.Errorf("linked to %d, want existing account %d", linked.ID, user.ID)
	}
	if linked.SocialID != "g-123" {
		t.Errorf("social id not linked: %q", linked.SocialID)
	}
}

func TestSocialLoginMovesLinkageToLatestProvider(t *testing.T) {
	svc := authSvc(t)

	_, user, err := svc.SocialLogin(&SocialLoginIn{
		SocialID: "fb-1", SocialType: "facebook", Email: "jane@example.com", Name: "Jane",
	})
	if err != nil {
		t.Fatalf("facebook login: %v", err)
	}

	_, relinked, err := svc.SocialLogin(&SocialLoginIn{
		SocialID: "g-1", SocialType: "google", Email: "jane@example.com", Name: "Jane",
	})
	if err != nil {
		t.Fatalf("google login: %v", err)
	}
	if relinked.ID != user.ID {
		t.Fatalf("google login created a new account: %d vs %d", relinked.ID, user.ID)
	}
	if relinked.SocialID != "g-1" || relinked.SocialType != "google" {
		t.Errorf("linkage = %s/%s, want g-1/google", relinked.SocialID, relinked.SocialType)
	}

	stored, err := svc.userRepo.FindByID(user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.SocialID != "g-1" || stored.SocialType != "google" {
		t.Errorf("stored linkage = %s/%s, want g-1/google", stored.SocialID, stored.SocialType)
	}
}

func TestChangePassword(t *testing.T) {
	svc := authSvc(t)

	user, err := svc.Register(&RegisterIn{Name: "Jane", Email: "jane@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong", "newpass123"); err == nil {
		t.Fatal("expected old password mismatch")
	}
	if err := svc.ChangePassword(user.ID, "secret123", "newpass123"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, _, err := svc.Login("jane@example.com", "newpass123"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
}

func TestDeviceTokenUpsert(t *testing.T) {
	svc := authSvc(t)

	user, err := svc.Register(&RegisterIn{Name: "Jane", Email: "jane@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.SaveDeviceToken(user.ID, "device-1", "fcm-a", "android"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if err := svc.SaveDeviceToken(user.ID, "device-1", "fcm-b", "android"); err != nil {
		t.Fatalf("update token: %v", err)
	}

	var rows []entity.DeviceToken
	svc.DB.Where("user_id = ?", user.ID).Find(&rows)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1 (upsert)", len(rows))
	}
	if rows[0].FcmToken != "fcm-b" {
		t.Errorf("fcm token = %q, want fcm-b", rows[0].FcmToken)
	}

	if err := svc.Logout(user.ID, "device-1"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	var count int64
	svc.DB.Model(&entity.DeviceToken{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Errorf("tokens after logout = %d, want 0", count)
	}
}

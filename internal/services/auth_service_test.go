package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthServiceForTest(users *fakeUserRepo, codes *fakeCodeStore) AuthService {
	return NewAuthService(users, codes, &fakeMailer{}, zap.NewNop().Sugar())
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTest(users, newFakeCodeStore())

	id, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected a record id")
	}

	if _, err := svc.Register(context.Background(), "alice", "alice@example.com", "other"); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTest(users, newFakeCodeStore())

	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "secret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	u, err := users.FindByEmail(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if u.Password == "secret" {
		t.Fatal("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")) != nil {
		t.Fatal("stored hash does not match the original password")
	}
}

func TestVerifyCredentials(t *testing.T) {
	users := newFakeUserRepo()
	users.add(t, "carol@example.com", "right")
	svc := newAuthServiceForTest(users, newFakeCodeStore())

	user, err := svc.VerifyCredentials(context.Background(), "carol@example.com", "right")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if user == nil || user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	user, err = svc.VerifyCredentials(context.Background(), "carol@example.com", "wrong")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if user == nil {
		t.Fatal("mismatch must still return the user for the response body")
	}

	if _, err := svc.VerifyCredentials(context.Background(), "nobody@example.com", "x"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdatePasswordDistinguishesSamePasswordFromMissingUser(t *testing.T) {
	users := newFakeUserRepo()
	users.add(t, "dave@example.com", "current")
	svc := newAuthServiceForTest(users, newFakeCodeStore())

	if err := svc.UpdatePassword(context.Background(), "dave@example.com", "current"); !errors.Is(err, ErrSamePassword) {
		t.Fatalf("expected ErrSamePassword, got %v", err)
	}
	if err := svc.UpdatePassword(context.Background(), "nobody@example.com", "whatever"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdatePasswordChangesHash(t *testing.T) {
	users := newFakeUserRepo()
	users.add(t, "erin@example.com", "old")
	svc := newAuthServiceForTest(users, newFakeCodeStore())

	if err := svc.UpdatePassword(context.Background(), "erin@example.com", "new"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, err := svc.VerifyCredentials(context.Background(), "erin@example.com", "new"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
	if _, err := svc.VerifyCredentials(context.Background(), "erin@example.com", "old"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("old password still accepted: %v", err)
	}
}

func TestSendVerificationCodeStoresFourDigits(t *testing.T) {
	users := newFakeUserRepo()
	users.add(t, "frank@example.com", "pw")
	codes := newFakeCodeStore()
	svc := newAuthServiceForTest(users, codes)

	code, err := svc.SendVerificationCode(context.Background(), "frank@example.com")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if len(code) != 4 {
		t.Fatalf("code %q is not 4 digits", code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Fatalf("code %q contains a non-digit", code)
		}
	}
	stored, ok := codes.stored(CodeKindVerify, "frank@example.com")
	if !ok || stored != code {
		t.Fatalf("stored code %q does not match returned code %q", stored, code)
	}
}

func TestConfirmVerificationCodeIsSingleUse(t *testing.T) {
	users := newFakeUserRepo()
	users.add(t, "grace@example.com", "pw")
	codes := newFakeCodeStore()
	svc := newAuthServiceForTest(users, codes)

	code, err := svc.SendVerificationCode(context.Background(), "grace@example.com")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if err := svc.ConfirmVerificationCode(context.Background(), "grace@example.com", "0000"+code); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode for wrong code, got %v", err)
	}
	if err := svc.ConfirmVerificationCode(context.Background(), "grace@example.com", code); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if err := svc.ConfirmVerificationCode(context.Background(), "grace@example.com", code); !errors.Is(err, ErrCodeExpired) {
		t.Fatalf("expected ErrCodeExpired on reuse, got %v", err)
	}
}

func TestSendPasswordResetCodeRequiresKnownUser(t *testing.T) {
	users := newFakeUserRepo()
	users.add(t, "heidi@example.com", "pw")
	codes := newFakeCodeStore()
	svc := newAuthServiceForTest(users, codes)

	if _, _, err := svc.SendPasswordResetCode(context.Background(), "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	code, user, err := svc.SendPasswordResetCode(context.Background(), "heidi@example.com")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if user == nil || user.Email != "heidi@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	stored, ok := codes.stored(CodeKindReset, "heidi@example.com")
	if !ok || stored != code {
		t.Fatalf("stored reset code %q does not match returned %q", stored, code)
	}
}

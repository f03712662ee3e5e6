package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fathima-sithara/cloudee-backend/internal/mailer"
	"github.com/fathima-sithara/cloudee-backend/internal/models"
	"github.com/fathima-sithara/cloudee-backend/internal/repository"
	"github.com/fathima-sithara/cloudee-backend/internal/utils"
)

const codeLength = 4

type authService struct {
	users  repository.UserRepository
	codes  CodeStore
	mail   mailer.Mailer
	logger *zap.SugaredLogger
}

func NewAuthService(users repository.UserRepository, codes CodeStore, mail mailer.Mailer, logger *zap.SugaredLogger) AuthService {
	return &authService{users: users, codes: codes, mail: mail, logger: logger}
}

// Register creates a verified account and returns the new record id.
func (s *authService) Register(ctx context.Context, name, email, password string) (string, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", ErrDuplicateUser
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return "", fmt.Errorf("checking existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	id, err := s.users.Create(ctx, &models.User{
		Username:        name,
		Email:           email,
		Password:        string(hash),
		IsEmailVerified: true,
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return "", ErrDuplicateUser
	}
	if err != nil {
		return "", fmt.Errorf("creating user: %w", err)
	}
	return id, nil
}

// VerifyCredentials compares the password against the stored hash. On a
// mismatch the user is still returned alongside ErrPasswordMismatch so the
// handler can keep the existing response shape.
func (s *authService) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return user, ErrPasswordMismatch
	}
	return user, nil
}

func (s *authService) UpdatePassword(ctx context.Context, email, password string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("finding user: %w", err)
	}

	// reusing the current password is rejected before any write
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil {
		return ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	modified, err := s.users.UpdatePassword(ctx, email, string(hash))
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	if modified == 0 {
		return ErrNotModified
	}
	return nil
}

// SendVerificationCode stores a fresh code and emails it. The send happens in
// the background; a relay failure is logged, not surfaced, since the code is
// also returned to the caller.
func (s *authService) SendVerificationCode(ctx context.Context, email string) (string, error) {
	code := utils.GenerateCode(codeLength)
	if err := s.codes.Save(ctx, CodeKindVerify, email, code); err != nil {
		s.logger.Warnf("failed to store verification code for %s: %v", email, err)
	}
	s.sendAsync(email, mailer.VerificationSubject, mailer.VerificationEmailBody(code))
	return code, nil
}

func (s *authService) SendPasswordResetCode(ctx context.Context, email string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", nil, ErrUserNotFound
	}
	if err != nil {
		return "", nil, fmt.Errorf("finding user: %w", err)
	}

	code := utils.GenerateCode(codeLength)
	if err := s.codes.Save(ctx, CodeKindReset, email, code); err != nil {
		s.logger.Warnf("failed to store reset code for %s: %v", email, err)
	}
	s.sendAsync(email, mailer.PasswordResetSubject, mailer.PasswordResetEmailBody(code))
	return code, user, nil
}

func (s *authService) ConfirmVerificationCode(ctx context.Context, email, code string) error {
	if err := s.codes.Check(ctx, CodeKindVerify, email, code); err != nil {
		return err
	}
	if err := s.users.MarkVerified(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("marking user verified: %w", err)
	}
	return nil
}

func (s *authService) sendAsync(email, subject, body string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.mail.Send(ctx, email, subject, body); err != nil {
			s.logger.Warnf("failed to send email to %s: %v", email, err)
		}
	}()
}

package services

import (
	"context"
	"errors"
	"io"

	"github.com/fathima-sithara/cloudee-backend/internal/models"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateUser    = errors.New("user already exists")
	ErrPasswordMismatch = errors.New("password mismatch")
	ErrSamePassword     = errors.New("using the old password")
	ErrNotModified      = errors.New("password not changed")
	ErrAssetNotFound    = errors.New("file not found")
	ErrInvalidCode      = errors.New("invalid verification code")
	ErrCodeExpired      = errors.New("verification code has expired")
	ErrInternal         = errors.New("internal server error")
)

// AuthService covers account and verification-code operations.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	VerifyCredentials(ctx context.Context, email, password string) (*models.User, error)
	UpdatePassword(ctx context.Context, email, password string) error
	SendVerificationCode(ctx context.Context, email string) (string, error)
	SendPasswordResetCode(ctx context.Context, email string) (string, *models.User, error)
	ConfirmVerificationCode(ctx context.Context, email, code string) error
}

// AssetService is the asset lifecycle manager: it keeps the object store and
// the metadata store tracking each other across uploads and deletes, and the
// account eraser cascading a user deletion through both.
type AssetService interface {
	Upload(ctx context.Context, email, filename string, content io.Reader) (*models.Asset, error)
	UploadBase64(ctx context.Context, email, filename, imageBase64 string) (*models.Asset, error)
	ListData(ctx context.Context, email string) ([]models.Asset, *models.User, error)
	DeleteByPublicID(ctx context.Context, publicID string) error
	BulkDelete(ctx context.Context, publicIDs []string) *models.BulkDeleteReport
	DeleteAssets(ctx context.Context, items []models.ItemToDelete) *models.AssetDeleteReport
	DeleteAccount(ctx context.Context, email string) (*models.AccountDeleteReport, error)
}

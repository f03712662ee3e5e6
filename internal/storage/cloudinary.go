package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore implements ObjectStore on the Cloudinary API.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, content io.Reader, folder string) (*UploadResult, error) {
	res, err := s.cld.Upload.Upload(ctx, content, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	return &UploadResult{
		PublicID:     res.PublicID,
		URL:          res.SecureURL,
		ResourceType: res.ResourceType,
	}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, publicID, kind string) (Outcome, error) {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: kind,
		Invalidate:   api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary destroy %s: %w", publicID, err)
	}
	// the API reports "not found" with a space
	switch strings.ReplaceAll(res.Result, " ", "_") {
	case "ok":
		return OutcomeOK, nil
	case "not_found":
		return OutcomeNotFound, nil
	default:
		return "", fmt.Errorf("cloudinary destroy %s: unexpected result %q", publicID, res.Result)
	}
}

func (s *CloudinaryStore) DeleteFolder(ctx context.Context, folder string) error {
	_, err := s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{Folder: folder})
	if err != nil {
		return fmt.Errorf("cloudinary delete folder %s: %w", folder, err)
	}
	return nil
}

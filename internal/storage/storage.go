package storage

import (
	"context"
	"fmt"
	"io"
)

// Outcome is the normalized result of an object-store delete.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeNotFound Outcome = "not_found"
)

// Resource kinds the provider partitions objects by. Deletes must name the
// kind the object was stored under; unknown kinds are discovered by probing
// image first, then raw.
const (
	KindImage = "image"
	KindRaw   = "raw"
)

// UploadResult is what the provider reports for a stored object.
type UploadResult struct {
	PublicID     string
	URL          string
	ResourceType string
}

// ObjectStore is the consumed surface of the media-hosting provider.
type ObjectStore interface {
	// Upload stores content under folder and returns the provider-assigned
	// identifier, retrieval URL and resource kind.
	Upload(ctx context.Context, content io.Reader, folder string) (*UploadResult, error)

	// Delete removes one object of the given kind. A missing object is an
	// Outcome, not an error; errors mean the call itself failed.
	Delete(ctx context.Context, publicID, kind string) (Outcome, error)

	// DeleteFolder removes an (empty) per-user folder. Callers treat failures
	// as best-effort cleanup.
	DeleteFolder(ctx context.Context, folder string) error
}

// UserFolder returns the per-owner folder path objects are namespaced under.
func UserFolder(root, email string) string {
	return fmt.Sprintf("%s/User/Data/%s", root, email)
}

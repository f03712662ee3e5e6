package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Asset is one stored file: the object lives in the media provider, the record
// in the assets collection. URL and PublicID are set once at upload and never
// mutated.
type Asset struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Filename     string             `bson:"filename" json:"filename"`
	URL          string             `bson:"url" json:"url"`
	PublicID     string             `bson:"public_id" json:"public_id"`
	ResourceType string             `bson:"resource_type" json:"resource_type"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// FailedDelete is one failed entry of a bulk delete report.
type FailedDelete struct {
	PublicID string `json:"public_id"`
	Reason   string `json:"reason"`
}

// BulkDeleteReport partitions a batch delete into per-item outcomes. The two
// lists together always cover every requested public ID.
type BulkDeleteReport struct {
	Deleted []string       `json:"deleted"`
	Failed  []FailedDelete `json:"failed"`
}

// AssetDeleteReport aggregates a paired store+metadata batch delete.
type AssetDeleteReport struct {
	DeletedFromCloudinary []string `json:"deleted_from_cloudinary"`
	DeletedFromMongo      []string `json:"deleted_from_mongodb"`
	TotalRequested        int      `json:"total_requested"`
	SuccessCount          int      `json:"success_count"`
}

// AccountDeleteReport is the outcome of a full account cascade. UserFound is
// false when the user record was already gone by the time the cascade reached
// it; asset cleanup results are still reported.
type AccountDeleteReport struct {
	AssetDeleteReport
	UserFound bool `json:"-"`
}

package models

// Request bodies. Field names follow the wire contract of the mobile client,
// so changing a json tag here is a breaking change.

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=4"`
}

type Base64UploadRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Filename    string `json:"filename" validate:"required"`
	ImageBase64 string `json:"image_base64" validate:"required"`
}

type BulkDeleteRequest struct {
	PublicIDs []string `json:"public_ids" validate:"required,min=1"`
}

// ItemToDelete pairs an object-store public ID with its metadata record key.
type ItemToDelete struct {
	PublicID string `json:"public_id" validate:"required"`
	MongoID  string `json:"_id" validate:"required"`
}

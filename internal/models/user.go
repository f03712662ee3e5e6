package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents one account in the users collection.
type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username        string             `bson:"username,omitempty" json:"username,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	IsEmailVerified bool               `bson:"is_email_verified" json:"is_email_verified"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// UserView is the response shape for a user, with the password hash stripped.
type UserView struct {
	ID              string    `json:"id"`
	Username        string    `json:"username,omitempty"`
	Email           string    `json:"email"`
	IsEmailVerified bool      `json:"is_email_verified"`
	CreatedAt       time.Time `json:"created_at"`
}

// View strips the credential fields for API responses.
func (u *User) View() *UserView {
	if u == nil {
		return nil
	}
	return &UserView{
		ID:              u.ID.Hex(),
		Username:        u.Username,
		Email:           u.Email,
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       u.CreatedAt,
	}
}

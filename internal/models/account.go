package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account roles
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Account represents a login account in the directory. Its ID matches the
// member profile ID, which is how the payout engine joins emails to members.
type Account struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	Role         string             `bson:"role" json:"role"`
	LastSignInAt time.Time          `bson:"lastSignInAt,omitempty" json:"lastSignInAt,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

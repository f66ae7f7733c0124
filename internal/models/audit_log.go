package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit actions written by this backend
const (
	AuditActionLogin          = "login"
	AuditActionLoginFailed    = "login_failed"
	AuditActionLogout         = "logout"
	AuditActionResetRequested = "password_reset_requested"
	AuditActionPasswordReset  = "password_reset"
	AuditActionPayout         = "payout"
	AuditActionRoleUpdated    = "role_updated"
	AuditActionUserDeleted    = "user_deleted"
)

// AuditEntry is an append-only auth/admin audit log row.
type AuditEntry struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	Action      string                 `bson:"action" json:"action"`
	UserID      primitive.ObjectID     `bson:"userId,omitempty" json:"userId,omitempty"`
	PerformedBy primitive.ObjectID     `bson:"performedBy,omitempty" json:"performedBy,omitempty"`
	IPAddress   string                 `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	UserAgent   string                 `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	Metadata    map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt   time.Time              `bson:"createdAt" json:"createdAt"`

	// UserEmail is resolved from the account directory when listing entries;
	// it is never stored.
	UserEmail string `bson:"-" json:"userEmail,omitempty"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EligibleMember is a member whose tenure meets the minimum threshold,
// enriched with an email from the account directory. Computed fresh on each
// request, never persisted. Email is "unknown" when no account row matches.
type EligibleMember struct {
	UserID       primitive.ObjectID `json:"userId"`
	Email        string             `json:"email"`
	TenureMonths int                `json:"tenureMonths"`
}

// Winner is an eligible, prepaid member selected by a draw. Winners are
// transient; they only become durable once confirmed as payouts.
type Winner struct {
	UserID  primitive.ObjectID `json:"userId"`
	Email   string             `json:"email"`
	Prepaid bool               `json:"prepaid"`
}

// TenureDraw holds one invocation of winner selection. Seed is the source of
// the permutation, kept so a draw can be reproduced during an audit.
type TenureDraw struct {
	Seed    int64     `json:"seed"`
	Winners []Winner  `json:"winners"`
	DrawnAt time.Time `json:"drawnAt"`
}

// ConfirmResult reports how many payouts a confirmation produced.
type ConfirmResult struct {
	Processed int `json:"processed"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payout is a persisted record of a reward disbursed to a winning member.
// Payout rows are append-only; they are never mutated or deleted.
type Payout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Amount    float64            `bson:"amount" json:"amount"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

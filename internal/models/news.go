package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// News list filters accepted by the admin listing
const (
	NewsFilterAll       = "all"
	NewsFilterPublished = "published"
	NewsFilterScheduled = "scheduled"
)

// NewsPost is an engagement feed entry authored by an admin. A post is either
// published immediately or held as a draft, optionally with a scheduled
// publication time.
type NewsPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	Published   bool               `bson:"published" json:"published"`
	ScheduledAt *time.Time         `bson:"scheduledAt,omitempty" json:"scheduledAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateNewsRequest defines the structure for creating a news post
type CreateNewsRequest struct {
	Title       string     `json:"title" binding:"required"`
	Content     string     `json:"content" binding:"required"`
	Published   bool       `json:"published"`
	ScheduledAt *time.Time `json:"scheduledAt"`
}

package mongodb

import (
	"context"
	"time"

	"github.com/K227-arch/home-solutions/internal/models"
	"github.com/K227-arch/home-solutions/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure NewsRepository implements the interface
var _ repositories.NewsRepository = (*NewsRepository)(nil)

// NewsRepository handles MongoDB operations for the engagement feed
type NewsRepository struct {
	collection *mongo.Collection
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *mongo.Database) *NewsRepository {
	return &NewsRepository{
		collection: db.Collection("news"),
	}
}

// Create inserts a new news post
func (r *NewsRepository) Create(ctx context.Context, post *models.NewsPost) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// Find retrieves posts for the admin listing, newest first. The filter keeps
// either every post, only published ones, or only those carrying a scheduled
// publication time.
func (r *NewsRepository) Find(ctx context.Context, filter string, limit int64) ([]*models.NewsPost, error) {
	query := bson.M{}
	switch filter {
	case models.NewsFilterPublished:
		query["published"] = true
	case models.NewsFilterScheduled:
		query["scheduledAt"] = bson.M{"$ne": nil}
	}
	return r.find(ctx, query, limit)
}

// FindPublished retrieves published posts for the public feed, newest first
func (r *NewsRepository) FindPublished(ctx context.Context, limit int64) ([]*models.NewsPost, error) {
	return r.find(ctx, bson.M{"published": true}, limit)
}

func (r *NewsRepository) find(ctx context.Context, query bson.M, limit int64) ([]*models.NewsPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	var posts []*models.NewsPost
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.NewsPost{}
	}
	return posts, nil
}

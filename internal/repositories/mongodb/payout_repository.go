package mongodb

import (
	"context"
	"time"

	"github.com/K227-arch/home-solutions/internal/models"
	"github.com/K227-arch/home-solutions/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure PayoutRepository implements the interface
var _ repositories.PayoutRepository = (*PayoutRepository)(nil)

// PayoutRepository handles MongoDB operations for Payout
type PayoutRepository struct {
	collection *mongo.Collection
}

// NewPayoutRepository creates a new PayoutRepository
func NewPayoutRepository(db *mongo.Database) *PayoutRepository {
	return &PayoutRepository{
		collection: db.Collection("payouts"),
	}
}

// CreateMany inserts one payout row per confirmed winner
func (r *PayoutRepository) CreateMany(ctx context.Context, payouts []*models.Payout) error {
	if len(payouts) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(payouts))
	for _, p := range payouts {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now()
		}
		docs = append(docs, p)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// FindByUserID retrieves all payouts recorded for a member
func (r *PayoutRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Payout, error) {
	var payouts []*models.Payout
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &payouts); err != nil {
		return nil, err
	}
	if payouts == nil {
		payouts = []*models.Payout{}
	}
	return payouts, nil
}

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

// Compile-time check to ensure PasswordResetRepository implements the interface
var _ repositories.PasswordResetRepository = (*PasswordResetRepository)(nil)

// PasswordResetRepository handles MongoDB operations for reset tokens
type PasswordResetRepository struct {
	collection *mongo.Collection
}

// NewPasswordResetRepository creates a new PasswordResetRepository
func NewPasswordResetRepository(db *mongo.Database) *PasswordResetRepository {
	return &PasswordResetRepository{
		collection: db.Collection("password_resets"),
	}
}

// Create inserts a new reset token
func (r *PasswordResetRepository) Create(ctx context.Context, reset *models.PasswordReset) error {
	if reset.ID.IsZero() {
		reset.ID = primitive.NewObjectID()
	}
	if reset.CreatedAt.IsZero() {
		reset.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, reset)
	return err
}

// FindByToken finds a reset entry by its token
func (r *PasswordResetRepository) FindByToken(ctx context.Context, token string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	err := r.collection.FindOne(ctx, bson.M{"token": token}).Decode(&reset)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &reset, nil
}

// Delete removes a consumed or expired token
func (r *PasswordResetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

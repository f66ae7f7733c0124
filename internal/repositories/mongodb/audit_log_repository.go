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

// Compile-time check to ensure AuditLogRepository implements the interface
var _ repositories.AuditLogRepository = (*AuditLogRepository)(nil)

// AuditLogRepository handles MongoDB operations for the audit trail
type AuditLogRepository struct {
	collection *mongo.Collection
}

// NewAuditLogRepository creates a new AuditLogRepository
func NewAuditLogRepository(db *mongo.Database) *AuditLogRepository {
	return &AuditLogRepository{
		collection: db.Collection("auth_audit_log"),
	}
}

// Create inserts a single audit entry
func (r *AuditLogRepository) Create(ctx context.Context, entry *models.AuditEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts a batch of audit entries
func (r *AuditLogRepository) CreateMany(ctx context.Context, entries []*models.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		if e.ID.IsZero() {
			e.ID = primitive.NewObjectID()
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = time.Now()
		}
		docs = append(docs, e)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// Find retrieves audit entries, newest first, optionally filtered by action
func (r *AuditLogRepository) Find(ctx context.Context, action string, limit int64) ([]*models.AuditEntry, error) {
	filter := bson.M{}
	if action != "" {
		filter["action"] = action
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	var entries []*models.AuditEntry
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.AuditEntry{}
	}
	return entries, nil
}

// CountDistinctActorsSince counts distinct user IDs with an entry for the
// given action at or after the given time
func (r *AuditLogRepository) CountDistinctActorsSince(ctx context.Context, action string, since time.Time) (int64, error) {
	filter := bson.M{"action": action, "createdAt": bson.M{"$gte": since}}
	ids, err := r.collection.Distinct(ctx, "userId", filter)
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

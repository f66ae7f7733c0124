package repositories

import (
	"context"
	"time"

	"github.com/K227-arch/home-solutions/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberRepository defines the interface for member profile operations
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Member, error)
	FindAll(ctx context.Context) ([]*models.Member, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// AccountRepository defines the interface for the account directory
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindAll(ctx context.Context) ([]*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hashed string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PaymentRepository defines the interface for payment reads
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByStatus(ctx context.Context, status string) ([]*models.Payment, error)
	FindAll(ctx context.Context) ([]*models.Payment, error)
}

// PayoutRepository defines the interface for payout writes (append-only)
type PayoutRepository interface {
	CreateMany(ctx context.Context, payouts []*models.Payout) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Payout, error)
}

// AuditLogRepository defines the interface for the auth/admin audit trail
type AuditLogRepository interface {
	Create(ctx context.Context, entry *models.AuditEntry) error
	CreateMany(ctx context.Context, entries []*models.AuditEntry) error
	Find(ctx context.Context, action string, limit int64) ([]*models.AuditEntry, error)
	CountDistinctActorsSince(ctx context.Context, action string, since time.Time) (int64, error)
}

// NewsRepository defines the interface for engagement feed posts
type NewsRepository interface {
	Create(ctx context.Context, post *models.NewsPost) error
	Find(ctx context.Context, filter string, limit int64) ([]*models.NewsPost, error)
	FindPublished(ctx context.Context, limit int64) ([]*models.NewsPost, error)
}

// PasswordResetRepository defines the interface for reset token storage
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *models.PasswordReset) error
	FindByToken(ctx context.Context, token string) (*models.PasswordReset, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TransactionRunner runs fn inside one storage transaction. The payout
// confirmation uses it so a payout row is never committed without its audit
// entry.
type TransactionRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

package services

import (
	"context"
	"io"

	"github.com/K227-arch/home-solutions/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TenureService defines the interface for the tenure payout engine
type TenureService interface {
	// EligibleMembers computes the members whose tenure meets the minimum
	// threshold, enriched with directory emails
	EligibleMembers(ctx context.Context) []models.EligibleMember

	// CalculateWinners runs one draw over eligible, prepaid members and caches
	// it for the calling admin until confirmed or redrawn
	CalculateWinners(ctx context.Context, adminID string) *models.TenureDraw

	// ConfirmPayouts durably records the calling admin's most recent draw as
	// payout and audit rows; confirming without a draw is a no-op
	ConfirmPayouts(ctx context.Context, adminID string) (*models.ConfirmResult, error)
}

// ReportService defines the interface for financial/report aggregation
type ReportService interface {
	// FinancialReport summarizes payments and member signup cohorts
	FinancialReport(ctx context.Context) *models.FinancialReport

	// DashboardStats backs the admin landing page
	DashboardStats(ctx context.Context) *models.DashboardStats

	// WriteCSV renders the scalar report metrics as metric,value rows
	WriteCSV(w io.Writer, report *models.FinancialReport) error
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Account, error)
	Login(ctx context.Context, req *models.LoginRequest, ip, userAgent string) (string, error) // Returns JWT token
	Logout(ctx context.Context, userID, ip, userAgent string) error
	ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest, ip, userAgent string) error
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
}

// MemberService defines the interface for admin user management
type MemberService interface {
	ListAccounts(ctx context.Context) ([]*models.Account, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string, performedBy primitive.ObjectID) error
	DeleteAccount(ctx context.Context, id primitive.ObjectID, performedBy primitive.ObjectID) error
}

// AuditService defines the interface for audit log browsing
type AuditService interface {
	// List retrieves entries filtered by action, then by a free-text query
	// matched against the action and the actor's account email
	List(ctx context.Context, action, query string, limit int64) ([]*models.AuditEntry, error)
}

// NewsService defines the interface for the engagement feed
type NewsService interface {
	Create(ctx context.Context, req *models.CreateNewsRequest) (*models.NewsPost, error)
	List(ctx context.Context, filter string) ([]*models.NewsPost, error)
	PublishedFeed(ctx context.Context, limit int64) ([]*models.NewsPost, error)
}

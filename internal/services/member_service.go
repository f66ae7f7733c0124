package services

import (
	"context"
	"fmt"

	"github.com/K227-arch/home-solutions/internal/models"
	"github.com/K227-arch/home-solutions/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure MemberServiceImpl implements MemberService
var _ MemberService = (*MemberServiceImpl)(nil)

// MemberServiceImpl handles the admin user-management surface
type MemberServiceImpl struct {
	accountRepo repositories.AccountRepository
	memberRepo  repositories.MemberRepository
	auditRepo   repositories.AuditLogRepository
}

// NewMemberService creates a new MemberServiceImpl
func NewMemberService(
	accountRepo repositories.AccountRepository,
	memberRepo repositories.MemberRepository,
	auditRepo repositories.AuditLogRepository,
) *MemberServiceImpl {
	return &MemberServiceImpl{
		accountRepo: accountRepo,
		memberRepo:  memberRepo,
		auditRepo:   auditRepo,
	}
}

// ListAccounts retrieves all accounts for the admin user table
func (s *MemberServiceImpl) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	accounts, err := s.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateRole changes an account's role and audits the change
func (s *MemberServiceImpl) UpdateRole(ctx context.Context, id primitive.ObjectID, role string, performedBy primitive.ObjectID) error {
	if err := s.accountRepo.UpdateRole(ctx, id, role); err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	entry := &models.AuditEntry{
		Action:      models.AuditActionRoleUpdated,
		UserID:      id,
		PerformedBy: performedBy,
		Metadata:    map[string]interface{}{"new_role": role},
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		slog.Error("Audit log insert failed", "error", err, "action", models.AuditActionRoleUpdated)
	}
	return nil
}

// DeleteAccount removes an account and its member profile, and audits the
// deletion. Historic payments and payouts are kept; they are append-only.
func (s *MemberServiceImpl) DeleteAccount(ctx context.Context, id primitive.ObjectID, performedBy primitive.ObjectID) error {
	if err := s.accountRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		slog.Error("Failed to delete member profile", "error", err, "accountId", id.Hex())
		return fmt.Errorf("failed to delete member profile: %w", err)
	}

	entry := &models.AuditEntry{
		Action:      models.AuditActionUserDeleted,
		UserID:      id,
		PerformedBy: performedBy,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		slog.Error("Audit log insert failed", "error", err, "action", models.AuditActionUserDeleted)
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/K227-arch/home-solutions/internal/models"
	"github.com/K227-arch/home-solutions/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure AuditServiceImpl implements AuditService
var _ AuditService = (*AuditServiceImpl)(nil)

// AuditServiceImpl exposes the audit trail to the admin screens, enriched
// with actor emails from the account directory.
type AuditServiceImpl struct {
	auditRepo   repositories.AuditLogRepository
	accountRepo repositories.AccountRepository
}

// NewAuditService creates a new AuditServiceImpl
func NewAuditService(auditRepo repositories.AuditLogRepository, accountRepo repositories.AccountRepository) *AuditServiceImpl {
	return &AuditServiceImpl{auditRepo: auditRepo, accountRepo: accountRepo}
}

// List retrieves audit entries, newest first, optionally filtered by action
// and by a free-text query matched against the actor's email and the action.
func (s *AuditServiceImpl) List(ctx context.Context, action, query string, limit int64) ([]*models.AuditEntry, error) {
	entries, err := s.auditRepo.Find(ctx, action, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audit log: %w", err)
	}

	emails := map[string]string{}
	accounts, err := s.accountRepo.FindAll(ctx)
	if err != nil {
		// Entries still list without emails; the query then only matches
		// actions.
		slog.Error("Failed to fetch account directory for audit listing", "error", err)
	} else {
		for _, a := range accounts {
			emails[a.ID.Hex()] = a.Email
		}
	}
	for _, e := range entries {
		e.UserEmail = emails[e.UserID.Hex()]
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries, nil
	}

	matched := []*models.AuditEntry{}
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.UserEmail), q) ||
			strings.Contains(strings.ToLower(e.Action), q) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

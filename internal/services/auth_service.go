package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/K227-arch/home-solutions/internal/config"
	"github.com/K227-arch/home-solutions/internal/models"
	"github.com/K227-arch/home-solutions/internal/repositories"
	"github.com/K227-arch/home-solutions/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// resetTokenTTL bounds how long a password reset link stays valid
const resetTokenTTL = time.Hour

// ErrInvalidCredentials is returned for any login failure; callers must not
// learn whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidResetToken is returned for unknown, used, or expired reset tokens
var ErrInvalidResetToken = errors.New("invalid or expired reset token")

// Compile-time check to ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

// AuthServiceImpl handles registration, login and the password reset flow.
// Every credential event leaves an audit entry.
type AuthServiceImpl struct {
	accountRepo repositories.AccountRepository
	memberRepo  repositories.MemberRepository
	resetRepo   repositories.PasswordResetRepository
	auditRepo   repositories.AuditLogRepository
	cfg         *config.Config
}

// NewAuthService creates a new AuthServiceImpl
func NewAuthService(
	accountRepo repositories.AccountRepository,
	memberRepo repositories.MemberRepository,
	resetRepo repositories.PasswordResetRepository,
	auditRepo repositories.AuditLogRepository,
	cfg *config.Config,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		memberRepo:  memberRepo,
		resetRepo:   resetRepo,
		auditRepo:   auditRepo,
		cfg:         cfg,
	}
}

// Register creates an account and its member profile row. The two share one
// ID; the payout engine joins them on it.
func (s *AuthServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*models.Account, error) {
	_, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, errors.New("an account with this email already exists")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		ID:       primitive.NewObjectID(),
		Email:    req.Email,
		Password: string(hashed),
		Role:     models.RoleMember,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	member := &models.Member{ID: account.ID, CreatedAt: account.CreatedAt}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		slog.Error("Failed to create member profile for new account", "error", err, "accountId", account.ID.Hex())
		return nil, fmt.Errorf("failed to create member profile: %w", err)
	}

	slog.Info("Account registered", "accountId", account.ID.Hex())
	account.Password = ""
	return account, nil
}

// Login verifies credentials and issues a session token. Both the success and
// the failure paths are audited.
func (s *AuthServiceImpl) Login(ctx context.Context, req *models.LoginRequest, ip, userAgent string) (string, error) {
	account, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.auditLoginFailure(ctx, req.Email, ip, userAgent, "unknown email")
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		s.auditLoginFailure(ctx, req.Email, ip, userAgent, "password mismatch")
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(account.ID.Hex(), account.Email, account.Role, s.cfg)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	account.LastSignInAt = time.Now()
	if err := s.accountRepo.Update(ctx, account); err != nil {
		slog.Warn("Failed to record last sign-in time", "error", err, "accountId", account.ID.Hex())
	}

	entry := &models.AuditEntry{
		Action:    models.AuditActionLogin,
		UserID:    account.ID,
		IPAddress: ip,
		UserAgent: userAgent,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		slog.Error("Audit log insert failed", "error", err, "action", models.AuditActionLogin)
	}

	return token, nil
}

// Logout records the sign-out; the token itself is stateless and simply
// discarded by the client.
func (s *AuthServiceImpl) Logout(ctx context.Context, userID, ip, userAgent string) error {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("invalid account id: %w", err)
	}
	entry := &models.AuditEntry{
		Action:    models.AuditActionLogout,
		UserID:    id,
		IPAddress: ip,
		UserAgent: userAgent,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		slog.Error("Audit log insert failed", "error", err, "action", models.AuditActionLogout)
	}
	return nil
}

// ForgotPassword issues a reset token when the account exists. The caller
// always receives the same neutral answer so account existence never leaks;
// the request is audited either way.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest, ip, userAgent string) error {
	account, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to look up account: %w", err)
	}

	if account != nil {
		token, err := utils.GenerateRandomString(32)
		if err != nil {
			return fmt.Errorf("failed to generate reset token: %w", err)
		}
		reset := &models.PasswordReset{
			Email:     account.Email,
			Token:     token,
			ExpiresAt: time.Now().Add(resetTokenTTL),
		}
		if err := s.resetRepo.Create(ctx, reset); err != nil {
			return fmt.Errorf("failed to store reset token: %w", err)
		}
		// Token delivery (email) is handled outside this backend.
	}

	entry := &models.AuditEntry{
		Action:    models.AuditActionResetRequested,
		IPAddress: ip,
		UserAgent: userAgent,
		Metadata:  map[string]interface{}{"email": req.Email},
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		slog.Error("Audit log insert failed", "error", err, "action", models.AuditActionResetRequested)
	}
	return nil
}

// ResetPassword consumes a reset token and replaces the account password.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	reset, err := s.resetRepo.FindByToken(ctx, req.Token)
	if err != nil {
		return ErrInvalidResetToken
	}
	if time.Now().After(reset.ExpiresAt) {
		if err := s.resetRepo.Delete(ctx, reset.ID); err != nil {
			slog.Warn("Failed to remove expired reset token", "error", err)
		}
		return ErrInvalidResetToken
	}

	account, err := s.accountRepo.FindByEmail(ctx, reset.Email)
	if err != nil {
		return ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.accountRepo.UpdatePassword(ctx, account.ID, string(hashed)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.resetRepo.Delete(ctx, reset.ID); err != nil {
		slog.Warn("Failed to burn reset token", "error", err)
	}

	entry := &models.AuditEntry{
		Action: models.AuditActionPasswordReset,
		UserID: account.ID,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		slog.Error("Audit log insert failed", "error", err, "action", models.AuditActionPasswordReset)
	}
	return nil
}

func (s *AuthServiceImpl) auditLoginFailure(ctx context.Context, email, ip, userAgent, reason string) {
	entry := &models.AuditEntry{
		Action:    models.AuditActionLoginFailed,
		IPAddress: ip,
		UserAgent: userAgent,
		Metadata:  map[string]interface{}{"reason": reason, "email": email},
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		slog.Error("Audit log insert failed", "error", err, "action", models.AuditActionLoginFailed)
	}
}

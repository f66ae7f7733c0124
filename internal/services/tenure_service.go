package services

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/K227-arch/home-solutions/internal/config"
	"github.com/K227-arch/home-solutions/internal/models"
	"github.com/K227-arch/home-solutions/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// daysPerTenureMonth fixes a tenure "month" to 30 days. Tenure is an
// approximation, not calendar months.
const daysPerTenureMonth = 30

// Compile-time check to ensure TenureServiceImpl implements TenureService
var _ TenureService = (*TenureServiceImpl)(nil)

// TenureServiceImpl computes payout eligibility, runs winner draws and
// records confirmed payouts. Draws are held in memory per admin account until
// confirmed; two admins drawing concurrently get independent draws.
type TenureServiceImpl struct {
	memberRepo  repositories.MemberRepository
	accountRepo repositories.AccountRepository
	paymentRepo repositories.PaymentRepository
	payoutRepo  repositories.PayoutRepository
	auditRepo   repositories.AuditLogRepository
	tx          repositories.TransactionRunner
	cfg         *config.Config

	mu    sync.Mutex
	draws map[string]*models.TenureDraw
}

// NewTenureService creates a new TenureServiceImpl
func NewTenureService(
	memberRepo repositories.MemberRepository,
	accountRepo repositories.AccountRepository,
	paymentRepo repositories.PaymentRepository,
	payoutRepo repositories.PayoutRepository,
	auditRepo repositories.AuditLogRepository,
	tx repositories.TransactionRunner,
	cfg *config.Config,
) *TenureServiceImpl {
	return &TenureServiceImpl{
		memberRepo:  memberRepo,
		accountRepo: accountRepo,
		paymentRepo: paymentRepo,
		payoutRepo:  payoutRepo,
		auditRepo:   auditRepo,
		tx:          tx,
		cfg:         cfg,
		draws:       make(map[string]*models.TenureDraw),
	}
}

// EligibleMembers returns every member whose tenure meets the minimum
// threshold. Read failures degrade to an empty result so the admin screen
// stays usable; they are logged, not surfaced.
func (s *TenureServiceImpl) EligibleMembers(ctx context.Context) []models.EligibleMember {
	members, err := s.memberRepo.FindAll(ctx)
	if err != nil {
		slog.Error("Failed to fetch members for eligibility", "error", err)
		return []models.EligibleMember{}
	}

	emails := map[primitive.ObjectID]string{}
	accounts, err := s.accountRepo.FindAll(ctx)
	if err != nil {
		// Members without a directory match still qualify, so a directory
		// outage only downgrades emails to "unknown".
		slog.Error("Failed to fetch account directory", "error", err)
	} else {
		for _, a := range accounts {
			emails[a.ID] = a.Email
		}
	}

	return filterEligible(members, emails, time.Now(), s.cfg.Payout.MinTenureMonths)
}

// CalculateWinners runs one seeded draw over eligible, prepaid members. The
// draw replaces any previous unconfirmed draw by the same admin.
func (s *TenureServiceImpl) CalculateWinners(ctx context.Context, adminID string) *models.TenureDraw {
	eligible := s.EligibleMembers(ctx)

	payments, err := s.paymentRepo.FindByStatus(ctx, models.PaymentStatusPaid)
	if err != nil {
		slog.Error("Failed to fetch paid payments for draw", "error", err)
		payments = []*models.Payment{}
	}
	prepaid := prepaidSet(payments, s.cfg.Payout.PrepayThreshold)

	seed := newDrawSeed()
	winners := selectWinners(eligible, prepaid, s.cfg.Payout.MaxWinners, seed)

	draw := &models.TenureDraw{
		Seed:    seed,
		Winners: winners,
		DrawnAt: time.Now(),
	}

	s.mu.Lock()
	s.draws[adminID] = draw
	s.mu.Unlock()

	slog.Info("Tenure payout draw completed",
		"admin", adminID,
		"seed", seed,
		"eligible", len(eligible),
		"prepaid", len(prepaid),
		"winners", len(winners),
	)
	return draw
}

// ConfirmPayouts records the calling admin's most recent draw. Zero winners
// is a silent no-op. The payout rows and their audit entries are committed in
// one transaction; on failure nothing is written and the draw stays cached.
func (s *TenureServiceImpl) ConfirmPayouts(ctx context.Context, adminID string) (*models.ConfirmResult, error) {
	s.mu.Lock()
	draw := s.draws[adminID]
	s.mu.Unlock()

	if draw == nil || len(draw.Winners) == 0 {
		return &models.ConfirmResult{Processed: 0}, nil
	}

	payouts := make([]*models.Payout, 0, len(draw.Winners))
	entries := make([]*models.AuditEntry, 0, len(draw.Winners))
	for _, w := range draw.Winners {
		payouts = append(payouts, &models.Payout{
			UserID: w.UserID,
			Amount: s.cfg.Payout.Amount,
			Status: models.PaymentStatusPayout,
		})
		entries = append(entries, &models.AuditEntry{
			Action:   models.AuditActionPayout,
			UserID:   w.UserID,
			Metadata: map[string]interface{}{"amount": s.cfg.Payout.Amount},
		})
	}

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.payoutRepo.CreateMany(txCtx, payouts); err != nil {
			return fmt.Errorf("failed to record payouts: %w", err)
		}
		if err := s.auditRepo.CreateMany(txCtx, entries); err != nil {
			return fmt.Errorf("failed to record payout audit trail: %w", err)
		}
		return nil
	})
	if err != nil {
		slog.Error("Payout confirmation failed", "error", err, "admin", adminID, "winners", len(draw.Winners))
		return nil, err
	}

	s.mu.Lock()
	delete(s.draws, adminID)
	s.mu.Unlock()

	slog.Info("Payouts confirmed", "admin", adminID, "seed", draw.Seed, "count", len(payouts))
	return &models.ConfirmResult{Processed: len(payouts)}, nil
}

// --- Engine helpers ---

// tenureMonths converts elapsed time since signup into whole 30-day months
func tenureMonths(now, createdAt time.Time) int {
	return int(now.Sub(createdAt) / (daysPerTenureMonth * 24 * time.Hour))
}

// filterEligible keeps members at or above the tenure threshold. Members
// without a directory email still appear, marked "unknown".
func filterEligible(members []*models.Member, emails map[primitive.ObjectID]string, now time.Time, minMonths int) []models.EligibleMember {
	eligible := []models.EligibleMember{}
	for _, m := range members {
		months := tenureMonths(now, m.CreatedAt)
		if months < minMonths {
			continue
		}
		email, ok := emails[m.ID]
		if !ok || email == "" {
			email = "unknown"
		}
		eligible = append(eligible, models.EligibleMember{
			UserID:       m.ID,
			Email:        email,
			TenureMonths: months,
		})
	}
	return eligible
}

// prepaidSet collects members with at least one single paid payment meeting
// the threshold. Amounts never accumulate across payments: two 200s do not
// make a 300.
func prepaidSet(payments []*models.Payment, threshold float64) map[primitive.ObjectID]struct{} {
	prepaid := make(map[primitive.ObjectID]struct{})
	for _, p := range payments {
		if p.Status != models.PaymentStatusPaid {
			continue
		}
		if p.Amount >= threshold {
			prepaid[p.UserID] = struct{}{}
		}
	}
	return prepaid
}

// selectWinners applies a seeded uniform permutation to the eligible∩prepaid
// pool and takes the first maxWinners entries. The same seed over the same
// pool reproduces the same winners, which makes a draw auditable after the
// fact.
func selectWinners(eligible []models.EligibleMember, prepaid map[primitive.ObjectID]struct{}, maxWinners int, seed int64) []models.Winner {
	pool := make([]models.Winner, 0, len(eligible))
	for _, e := range eligible {
		if _, ok := prepaid[e.UserID]; !ok {
			continue
		}
		pool = append(pool, models.Winner{
			UserID:  e.UserID,
			Email:   e.Email,
			Prepaid: true,
		})
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > maxWinners {
		pool = pool[:maxWinners]
	}
	return pool
}

// newDrawSeed draws a fresh seed from the system CSPRNG so consecutive draws
// stay independent while each individual draw remains reproducible.
func newDrawSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// CSPRNG failure is effectively unreachable; fall back to the clock.
		slog.Error("Failed to read draw seed from crypto/rand", "error", err)
		return time.Now().UnixNano()
	}
	return int64(binary.BigEndian.Uint64(b[:]))
}

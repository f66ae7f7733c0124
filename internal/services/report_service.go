package services

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/K227-arch/home-solutions/internal/models"
	"github.com/K227-arch/home-solutions/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure ReportServiceImpl implements ReportService
var _ ReportService = (*ReportServiceImpl)(nil)

// ReportServiceImpl aggregates payments and signup cohorts for the admin
// report screens. Read failures degrade the affected metrics to zero rather
// than failing the whole report.
type ReportServiceImpl struct {
	memberRepo  repositories.MemberRepository
	paymentRepo repositories.PaymentRepository
	auditRepo   repositories.AuditLogRepository
}

// NewReportService creates a new ReportServiceImpl
func NewReportService(
	memberRepo repositories.MemberRepository,
	paymentRepo repositories.PaymentRepository,
	auditRepo repositories.AuditLogRepository,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		memberRepo:  memberRepo,
		paymentRepo: paymentRepo,
		auditRepo:   auditRepo,
	}
}

// FinancialReport summarizes revenue, member payment standing, and the
// 12-bucket tenure histogram.
func (s *ReportServiceImpl) FinancialReport(ctx context.Context) *models.FinancialReport {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		slog.Error("Failed to fetch payments for report", "error", err)
		payments = []*models.Payment{}
	}

	members, err := s.memberRepo.FindAll(ctx)
	if err != nil {
		slog.Error("Failed to fetch members for report", "error", err)
		members = []*models.Member{}
	}

	return buildReport(payments, members, time.Now())
}

// DashboardStats returns the admin landing page counters.
func (s *ReportServiceImpl) DashboardStats(ctx context.Context) *models.DashboardStats {
	stats := &models.DashboardStats{}

	total, err := s.memberRepo.Count(ctx)
	if err != nil {
		slog.Error("Failed to count members", "error", err)
	} else {
		stats.TotalMembers = total
	}

	today := time.Now().Truncate(24 * time.Hour)
	newToday, err := s.memberRepo.CountCreatedSince(ctx, today)
	if err != nil {
		slog.Error("Failed to count new members", "error", err)
	} else {
		stats.NewToday = newToday
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	active, err := s.auditRepo.CountDistinctActorsSince(ctx, models.AuditActionLogin, weekAgo)
	if err != nil {
		slog.Error("Failed to count active members", "error", err)
	} else {
		stats.ActiveMembers = active
	}

	return stats
}

// WriteCSV renders the scalar report metrics as metric,value rows.
func (s *ReportServiceImpl) WriteCSV(w io.Writer, report *models.FinancialReport) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		{"metric", "value"},
		{"totalRevenue", strconv.FormatFloat(report.TotalRevenue, 'f', -1, 64)},
		{"activeMembers", strconv.Itoa(report.ActiveMembers)},
		{"defaultedMembers", strconv.Itoa(report.DefaultedMembers)},
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// buildReport computes the report from already-fetched rows
func buildReport(payments []*models.Payment, members []*models.Member, now time.Time) *models.FinancialReport {
	report := &models.FinancialReport{}

	paid := make(map[primitive.ObjectID]struct{})
	defaulted := make(map[primitive.ObjectID]struct{})
	for _, p := range payments {
		switch p.Status {
		case models.PaymentStatusPaid:
			report.TotalRevenue += p.Amount
			paid[p.UserID] = struct{}{}
		case models.PaymentStatusDefaulted:
			// Not mutually exclusive with paid; a member can appear in both.
			defaulted[p.UserID] = struct{}{}
		}
	}
	report.ActiveMembers = len(paid)
	report.DefaultedMembers = len(defaulted)

	for _, m := range members {
		idx := tenureMonths(now, m.CreatedAt)
		if idx < 0 {
			idx = 0
		}
		// Bucket 11 is an unbounded 11+ catch-all, not a rolling window.
		if idx > models.TenureBuckets-1 {
			idx = models.TenureBuckets - 1
		}
		report.TenureHistogram[idx]++
	}

	return report
}

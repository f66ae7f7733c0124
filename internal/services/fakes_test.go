package services

import (
	"context"
	"time"

	"github.com/K227-arch/home-solutions/internal/config"
	"github.com/K227-arch/home-solutions/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory fakes for the repository interfaces. Each fake returns its
// configured error from every method when set, which is how the tests
// exercise the degraded-read paths.

type fakeMemberRepo struct {
	members []*models.Member
	err     error
}

func (f *fakeMemberRepo) Create(ctx context.Context, member *models.Member) error {
	if f.err != nil {
		return f.err
	}
	f.members = append(f.members, member)
	return nil
}

func (f *fakeMemberRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeMemberRepo) FindAll(ctx context.Context) ([]*models.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.members, nil
}

func (f *fakeMemberRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	for i, m := range f.members {
		if m.ID == id {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeMemberRepo) Count(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.members)), nil
}

func (f *fakeMemberRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, m := range f.members {
		if !m.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type fakeAccountRepo struct {
	accounts []*models.Account
	err      error
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *models.Account) error {
	if f.err != nil {
		return f.err
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAccountRepo) FindAll(ctx context.Context) ([]*models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.accounts, nil
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *models.Account) error {
	return f.err
}

func (f *fakeAccountRepo) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error {
	if f.err != nil {
		return f.err
	}
	for _, a := range f.accounts {
		if a.ID == id {
			a.Role = role
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeAccountRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, hashed string) error {
	if f.err != nil {
		return f.err
	}
	for _, a := range f.accounts {
		if a.ID == id {
			a.Password = hashed
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeAccountRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	for i, a := range f.accounts {
		if a.ID == id {
			f.accounts = append(f.accounts[:i], f.accounts[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakePaymentRepo struct {
	payments []*models.Payment
	err      error
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	if f.err != nil {
		return f.err
	}
	f.payments = append(f.payments, payment)
	return nil
}

func (f *fakePaymentRepo) FindByStatus(ctx context.Context, status string) ([]*models.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*models.Payment{}
	for _, p := range f.payments {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) FindAll(ctx context.Context) ([]*models.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.payments, nil
}

type fakePayoutRepo struct {
	payouts []*models.Payout
	err     error
}

func (f *fakePayoutRepo) CreateMany(ctx context.Context, payouts []*models.Payout) error {
	if f.err != nil {
		return f.err
	}
	f.payouts = append(f.payouts, payouts...)
	return nil
}

func (f *fakePayoutRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Payout, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*models.Payout{}
	for _, p := range f.payouts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeAuditRepo struct {
	entries []*models.AuditEntry
	err     error
}

func (f *fakeAuditRepo) Create(ctx context.Context, entry *models.AuditEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditRepo) CreateMany(ctx context.Context, entries []*models.AuditEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entries...)
	return nil
}

func (f *fakeAuditRepo) Find(ctx context.Context, action string, limit int64) ([]*models.AuditEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*models.AuditEntry{}
	for _, e := range f.entries {
		if action == "" || e.Action == action {
			out = append(out, e)
		}
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeAuditRepo) CountDistinctActorsSince(ctx context.Context, action string, since time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	actors := map[primitive.ObjectID]struct{}{}
	for _, e := range f.entries {
		if e.Action == action && !e.CreatedAt.Before(since) {
			actors[e.UserID] = struct{}{}
		}
	}
	return int64(len(actors)), nil
}

// byAction filters recorded entries, newest-insertion-order preserved
func (f *fakeAuditRepo) byAction(action string) []*models.AuditEntry {
	out := []*models.AuditEntry{}
	for _, e := range f.entries {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

type fakeNewsRepo struct {
	posts []*models.NewsPost
	err   error

	lastFilter string
	lastLimit  int64
}

func (f *fakeNewsRepo) Create(ctx context.Context, post *models.NewsPost) error {
	if f.err != nil {
		return f.err
	}
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakeNewsRepo) Find(ctx context.Context, filter string, limit int64) ([]*models.NewsPost, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastFilter = filter
	f.lastLimit = limit
	out := []*models.NewsPost{}
	for _, p := range f.posts {
		switch filter {
		case models.NewsFilterPublished:
			if !p.Published {
				continue
			}
		case models.NewsFilterScheduled:
			if p.ScheduledAt == nil {
				continue
			}
		}
		out = append(out, p)
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeNewsRepo) FindPublished(ctx context.Context, limit int64) ([]*models.NewsPost, error) {
	return f.Find(ctx, models.NewsFilterPublished, limit)
}

type fakeResetRepo struct {
	resets []*models.PasswordReset
	err    error
}

func (f *fakeResetRepo) Create(ctx context.Context, reset *models.PasswordReset) error {
	if f.err != nil {
		return f.err
	}
	if reset.ID.IsZero() {
		reset.ID = primitive.NewObjectID()
	}
	f.resets = append(f.resets, reset)
	return nil
}

func (f *fakeResetRepo) FindByToken(ctx context.Context, token string) (*models.PasswordReset, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.resets {
		if r.Token == token {
			return r, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeResetRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	for i, r := range f.resets {
		if r.ID == id {
			f.resets = append(f.resets[:i], f.resets[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeTxRunner runs the callback directly; there is no storage to roll back,
// so tests assert on what the repos received instead.
type fakeTxRunner struct {
	calls int
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
		Payout: config.PayoutConfig{
			MinTenureMonths: 12,
			PrepayThreshold: 300,
			MaxWinners:      3,
			Amount:          300,
		},
	}
}

package services

import (
	"context"
	"fmt"

	"github.com/K227-arch/home-solutions/internal/models"
	"github.com/K227-arch/home-solutions/internal/repositories"
	"golang.org/x/exp/slog"
)

// Bounds on the public news feed page size
const (
	newsFeedDefaultLimit = 5
	newsFeedMaxLimit     = 20
	newsAdminListLimit   = 100
)

// Compile-time check to ensure NewsServiceImpl implements NewsService
var _ NewsService = (*NewsServiceImpl)(nil)

// NewsServiceImpl handles the engagement feed: admin-authored posts and the
// public member-facing listing.
type NewsServiceImpl struct {
	newsRepo repositories.NewsRepository
}

// NewNewsService creates a new NewsServiceImpl
func NewNewsService(newsRepo repositories.NewsRepository) *NewsServiceImpl {
	return &NewsServiceImpl{newsRepo: newsRepo}
}

// Create stores a new post. Posts start unpublished unless the request says
// otherwise; a scheduled time is kept as metadata for the admin listing.
func (s *NewsServiceImpl) Create(ctx context.Context, req *models.CreateNewsRequest) (*models.NewsPost, error) {
	post := &models.NewsPost{
		Title:       req.Title,
		Content:     req.Content,
		Published:   req.Published,
		ScheduledAt: req.ScheduledAt,
	}
	if err := s.newsRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create news post: %w", err)
	}

	slog.Info("News post created", "postId", post.ID.Hex(), "published", post.Published)
	return post, nil
}

// List retrieves posts for the admin screen, newest first. Unrecognized
// filters fall back to listing everything.
func (s *NewsServiceImpl) List(ctx context.Context, filter string) ([]*models.NewsPost, error) {
	switch filter {
	case models.NewsFilterPublished, models.NewsFilterScheduled:
	default:
		filter = models.NewsFilterAll
	}

	posts, err := s.newsRepo.Find(ctx, filter, newsAdminListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list news posts: %w", err)
	}
	return posts, nil
}

// PublishedFeed retrieves published posts for the public feed. The page size
// is clamped to a small window so the endpoint stays cheap without auth.
func (s *NewsServiceImpl) PublishedFeed(ctx context.Context, limit int64) ([]*models.NewsPost, error) {
	if limit < 1 {
		limit = newsFeedDefaultLimit
	}
	if limit > newsFeedMaxLimit {
		limit = newsFeedMaxLimit
	}

	posts, err := s.newsRepo.FindPublished(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load news feed: %w", err)
	}
	return posts, nil
}

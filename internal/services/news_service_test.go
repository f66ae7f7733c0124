package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/K227-arch/home-solutions/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNews(repo *fakeNewsRepo, title string, published bool, scheduled *time.Time) *models.NewsPost {
	post := &models.NewsPost{
		Title:       title,
		Content:     "<p>" + title + "</p>",
		Published:   published,
		ScheduledAt: scheduled,
	}
	_ = repo.Create(context.Background(), post)
	return post
}

func TestCreateNewsPost(t *testing.T) {
	repo := &fakeNewsRepo{}
	svc := NewNewsService(repo)
	when := time.Now().Add(48 * time.Hour)

	post, err := svc.Create(context.Background(), &models.CreateNewsRequest{
		Title:       "Maintenance window",
		Content:     "<p>Scheduled maintenance this weekend.</p>",
		ScheduledAt: &when,
	})

	require.NoError(t, err)
	assert.False(t, post.ID.IsZero())
	assert.False(t, post.Published, "posts default to draft")
	require.NotNil(t, post.ScheduledAt)
	assert.Equal(t, when, *post.ScheduledAt)
	assert.Len(t, repo.posts, 1)
}

func TestCreateNewsPost_StorageFailure(t *testing.T) {
	svc := NewNewsService(&fakeNewsRepo{err: errors.New("write failed")})

	_, err := svc.Create(context.Background(), &models.CreateNewsRequest{
		Title:   "Broken",
		Content: "x",
	})

	assert.Error(t, err)
}

func TestListNews_Filters(t *testing.T) {
	when := time.Now().Add(24 * time.Hour)
	repo := &fakeNewsRepo{}
	seedNews(repo, "draft", false, nil)
	published := seedNews(repo, "published", true, nil)
	scheduled := seedNews(repo, "scheduled", false, &when)
	svc := NewNewsService(repo)

	all, err := svc.List(context.Background(), models.NewsFilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pub, err := svc.List(context.Background(), models.NewsFilterPublished)
	require.NoError(t, err)
	require.Len(t, pub, 1)
	assert.Equal(t, published.ID, pub[0].ID)

	sched, err := svc.List(context.Background(), models.NewsFilterScheduled)
	require.NoError(t, err)
	require.Len(t, sched, 1)
	assert.Equal(t, scheduled.ID, sched[0].ID)
}

func TestListNews_UnknownFilterListsAll(t *testing.T) {
	repo := &fakeNewsRepo{}
	seedNews(repo, "one", true, nil)
	seedNews(repo, "two", false, nil)
	svc := NewNewsService(repo)

	posts, err := svc.List(context.Background(), "bogus")

	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, models.NewsFilterAll, repo.lastFilter)
}

func TestPublishedFeed_OnlyPublished(t *testing.T) {
	repo := &fakeNewsRepo{}
	seedNews(repo, "draft", false, nil)
	published := seedNews(repo, "published", true, nil)
	svc := NewNewsService(repo)

	posts, err := svc.PublishedFeed(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, published.ID, posts[0].ID)
}

func TestPublishedFeed_LimitClamps(t *testing.T) {
	repo := &fakeNewsRepo{}
	svc := NewNewsService(repo)

	tests := []struct {
		name      string
		limit     int64
		wantLimit int64
	}{
		{"zero falls back to default", 0, 5},
		{"negative falls back to default", -3, 5},
		{"within bounds passes through", 7, 7},
		{"above cap clamps", 500, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PublishedFeed(context.Background(), tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, repo.lastLimit)
		})
	}
}

package service

import (
	"context"
	"fmt"

	"mandir/internal/cache"
	"mandir/internal/models"
)

type CommunityStore interface {
	ListApproved(ctx context.Context) ([]models.CommunityPost, error)
	Create(ctx context.Context, p *models.CommunityPost) error
}

type CommunityService struct {
	repo  CommunityStore
	store *cache.Store
}

func NewCommunityService(repo CommunityStore, store *cache.Store) *CommunityService {
	return &CommunityService{repo: repo, store: store}
}

func (s *CommunityService) ListApproved(ctx context.Context) ([]models.CommunityPost, error) {
	return cache.Resolve(ctx, s.store, cache.NewKey("community"), func(ctx context.Context) ([]models.CommunityPost, error) {
		posts, err := s.repo.ListApproved(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list posts: %w", err)
		}
		return posts, nil
	})
}

// Create submits a post for moderation. It does not show up in the approved
// feed until staff approve it, so the feed cache stays untouched.
func (s *CommunityService) Create(ctx context.Context, req *models.CreatePostRequest, userID string) (*models.CommunityPost, error) {
	post := &models.CommunityPost{
		UserID:   userID,
		Title:    req.Title,
		Content:  req.Content,
		Category: optional(req.Category),
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"mandir/internal/cache"
	"mandir/internal/models"
)

// pastEventsLimit keeps the archive view to a handful of recent festivals
const pastEventsLimit = 6

type FestivalStore interface {
	Upcoming(ctx context.Context, today string) ([]models.FestivalEvent, error)
	Past(ctx context.Context, today string, limit int) ([]models.FestivalEvent, error)
}

type FestivalService struct {
	repo  FestivalStore
	store *cache.Store
	now   func() time.Time
}

func NewFestivalService(repo FestivalStore, store *cache.Store) *FestivalService {
	return &FestivalService{repo: repo, store: store, now: time.Now}
}

func (s *FestivalService) today() string {
	return s.now().Format("2006-01-02")
}

func (s *FestivalService) Upcoming(ctx context.Context) ([]models.FestivalEvent, error) {
	today := s.today()
	key := cache.NewKey("festivals", "upcoming", today)
	return cache.Resolve(ctx, s.store, key, func(ctx context.Context) ([]models.FestivalEvent, error) {
		events, err := s.repo.Upcoming(ctx, today)
		if err != nil {
			return nil, fmt.Errorf("failed to list upcoming festivals: %w", err)
		}
		return events, nil
	})
}

func (s *FestivalService) Past(ctx context.Context) ([]models.FestivalEvent, error) {
	today := s.today()
	key := cache.NewKey("festivals", "past", today)
	return cache.Resolve(ctx, s.store, key, func(ctx context.Context) ([]models.FestivalEvent, error) {
		events, err := s.repo.Past(ctx, today, pastEventsLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to list past festivals: %w", err)
		}
		return events, nil
	})
}

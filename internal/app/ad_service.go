package app

import (
	"context"
	"errors"

	"healthlog/internal/domain"
)

// AdService exposes the ad inventory and click counting.
type AdService struct {
	ads domain.AdRepository
}

// NewAdService creates an AdService backed by the given repository.
func NewAdService(ads domain.AdRepository) *AdService {
	return &AdService{ads: ads}
}

// List returns all ads.
func (s *AdService) List(ctx context.Context) ([]domain.Ad, error) {
	return s.ads.ListAds(ctx)
}

// Create inserts an ad and returns its id.
func (s *AdService) Create(ctx context.Context, imageLink, targetLink string) (int64, error) {
	if imageLink == "" || targetLink == "" {
		return 0, errors.New("image and target links are required")
	}
	return s.ads.CreateAd(ctx, imageLink, targetLink)
}

// Delete removes an ad by id.
func (s *AdService) Delete(ctx context.Context, id int64) error {
	return s.ads.DeleteAd(ctx, id)
}

// Click increments the click counter for one ad.
func (s *AdService) Click(ctx context.Context, id int64) error {
	return s.ads.IncrementAdClicks(ctx, id)
}

package domain

import "context"

// Ad is a banner shown by the frontend. Counter tracks click-throughs.
type Ad struct {
	ID         int64  `json:"id"`
	ImageLink  string `json:"imageLink"`
	TargetLink string `json:"targetLink"`
	Counter    int64  `json:"counter"`
}

// AdRepository is the port for ad inventory and click counting.
type AdRepository interface {
	ListAds(ctx context.Context) ([]Ad, error)
	CreateAd(ctx context.Context, imageLink, targetLink string) (int64, error)
	DeleteAd(ctx context.Context, id int64) error
	// IncrementAdClicks bumps the click counter for one ad.
	IncrementAdClicks(ctx context.Context, id int64) error
}

package repository

import (
	"context"

	"tradepost/internal/domain/entity"
	"tradepost/pkg/money"
)

// ListingFilter narrows ListListings. Zero values mean "no constraint";
// Search matches title or description case-insensitively.
type ListingFilter struct {
	Category string
	Status   string
	City     string
	Search   string
	MinPrice money.Amount
	MaxPrice money.Amount
}

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	List(ctx context.Context, filter ListingFilter, limit, offset int) ([]*entity.Listing, int64, error)
	ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Listing, int64, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	UpdateAggregates(ctx context.Context, id string, rating float64, reviewCount int) error
}

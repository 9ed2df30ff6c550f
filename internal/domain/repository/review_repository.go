package repository

import (
	"context"

	"tradepost/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	// GetByOrderAndReviewer looks up the unique (listingId, reviewerId,
	// orderId) review, NotFound when absent.
	GetByOrderAndReviewer(ctx context.Context, listingID, reviewerID, orderID string) (*entity.Review, error)
	ListByListingID(ctx context.Context, listingID string, limit, offset int) ([]*entity.Review, int64, error)
	ListByRevieweeID(ctx context.Context, revieweeID string) ([]*entity.Review, error)
}

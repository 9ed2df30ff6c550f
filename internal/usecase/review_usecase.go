package usecase

import (
	"context"

	"tradepost/internal/domain/entity"
	"tradepost/internal/domain/repository"
	"tradepost/pkg/errors"
	"tradepost/pkg/logger"
	"tradepost/pkg/utils"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	listingRepo repository.ListingRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		listingRepo: listingRepo,
	}
}

type CreateReviewInput struct {
	ListingID  string
	RevieweeID string
	OrderID    string
	Rating     int
	Comment    string
	Aspects    []string
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, reviewerID string, input CreateReviewInput) (*entity.Review, error) {
	if input.ListingID == "" || input.RevieweeID == "" || input.OrderID == "" {
		return nil, errors.BadRequest("Missing required fields", nil)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	existing, err := uc.reviewRepo.GetByOrderAndReviewer(ctx, input.ListingID, reviewerID, input.OrderID)
	if err == nil && existing != nil {
		return nil, errors.Conflict("You have already reviewed this item")
	}

	aspects := input.Aspects
	if aspects == nil {
		aspects = []string{}
	}

	review := &entity.Review{
		ListingID:  input.ListingID,
		OrderID:    input.OrderID,
		ReviewerID: reviewerID,
		RevieweeID: input.RevieweeID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		Aspects:    aspects,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	// Two independent full recomputations. A failure in either leaves that
	// aggregate stale but never rolls back the review; the next review of
	// the same target repairs it.
	if err := uc.recomputeUserRating(ctx, input.RevieweeID); err != nil {
		logger.Warn("Skipping user rating update for %s: %v", input.RevieweeID, err)
	}
	if err := uc.recomputeListingRating(ctx, input.ListingID); err != nil {
		logger.Warn("Skipping listing rating update for %s: %v", input.ListingID, err)
	}

	return review, nil
}

func (uc *ReviewUseCase) ListListingReviews(ctx context.Context, listingID string, page, limit int) ([]*entity.Review, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.reviewRepo.ListByListingID(ctx, listingID, pagination.PageSize, pagination.Offset)
}

func (uc *ReviewUseCase) ListUserReviews(ctx context.Context, userID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByRevieweeID(ctx, userID)
}

// recomputeUserRating rescans every review naming the user as reviewee and
// rewrites the stored mean and count from scratch.
func (uc *ReviewUseCase) recomputeUserRating(ctx context.Context, userID string) error {
	reviews, err := uc.reviewRepo.ListByRevieweeID(ctx, userID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}

	return uc.userRepo.UpdateAggregates(ctx, userID, meanRating(reviews), len(reviews))
}

func (uc *ReviewUseCase) recomputeListingRating(ctx context.Context, listingID string) error {
	reviews, _, err := uc.reviewRepo.ListByListingID(ctx, listingID, 0, 0)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}

	return uc.listingRepo.UpdateAggregates(ctx, listingID, meanRating(reviews), len(reviews))
}

func meanRating(reviews []*entity.Review) float64 {
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(reviews))
}

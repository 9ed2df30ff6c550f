package usecase

import (
	"context"
	"time"

	"tradepost/internal/domain/entity"
	"tradepost/internal/domain/repository"
	"tradepost/pkg/errors"
	"tradepost/pkg/money"
	"tradepost/pkg/utils"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		userRepo:    userRepo,
	}
}

type CreateListingInput struct {
	Title       string
	Description string
	Price       money.Amount
	Category    string
	Location    string
	City        string
	State       string
	Country     string
	Images      []string
}

func (uc *ListingUseCase) CreateListing(ctx context.Context, sellerID string, input CreateListingInput) (*entity.Listing, error) {
	if input.Title == "" || input.Description == "" || input.Category == "" {
		return nil, errors.BadRequest("Missing required fields", nil)
	}
	if !input.Price.IsPositive() {
		return nil, errors.BadRequest("Price must be positive", nil)
	}
	if !entity.ValidListingCategory(input.Category) {
		return nil, errors.BadRequest("Invalid category", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, sellerID); err != nil {
		return nil, err
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}

	listing := &entity.Listing{
		SellerID:    sellerID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Status:      entity.ListingStatusActive,
		Location:    input.Location,
		City:        input.City,
		State:       input.State,
		Country:     input.Country,
		Images:      images,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// GetListingByID bumps the view counter on every fetch. The increment is
// fired off the request path; a lost bump under races is acceptable for a
// view counter.
func (uc *ListingUseCase) GetListingByID(ctx context.Context, id string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = uc.listingRepo.IncrementViews(ctx, id)
	}()

	listing.Views++
	return listing, nil
}

func (uc *ListingUseCase) ListListings(ctx context.Context, filter repository.ListingFilter, page, limit int) ([]*entity.Listing, int64, error) {
	if filter.Status == "" {
		filter.Status = entity.ListingStatusActive
	}

	pagination := utils.NewPaginationParams(page, limit)
	return uc.listingRepo.List(ctx, filter, pagination.PageSize, pagination.Offset)
}

func (uc *ListingUseCase) ListBySeller(ctx context.Context, sellerID string, page, limit int) ([]*entity.Listing, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.listingRepo.ListBySellerID(ctx, sellerID, pagination.PageSize, pagination.Offset)
}

type UpdateListingInput struct {
	Title       string
	Description string
	Price       money.Amount
	Category    string
	Status      string
	Location    string
	City        string
	State       string
	Country     string
	Images      []string
}

// UpdateListing applies the set fields; zero values leave the stored value
// alone. Rating, review count and views are not writable here.
func (uc *ListingUseCase) UpdateListing(ctx context.Context, sellerID, id string, input UpdateListingInput) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.SellerID != sellerID {
		return nil, errors.Forbidden("You can only edit your own listings", nil)
	}

	if input.Title != "" {
		listing.Title = input.Title
	}
	if input.Description != "" {
		listing.Description = input.Description
	}
	if input.Price != 0 {
		if !input.Price.IsPositive() {
			return nil, errors.BadRequest("Price must be positive", nil)
		}
		listing.Price = input.Price
	}
	if input.Category != "" {
		if !entity.ValidListingCategory(input.Category) {
			return nil, errors.BadRequest("Invalid category", nil)
		}
		listing.Category = input.Category
	}
	if input.Status != "" {
		if !entity.ValidListingStatus(input.Status) {
			return nil, errors.BadRequest("Invalid status", nil)
		}
		listing.Status = input.Status
	}
	if input.Location != "" {
		listing.Location = input.Location
	}
	if input.City != "" {
		listing.City = input.City
	}
	if input.State != "" {
		listing.State = input.State
	}
	if input.Country != "" {
		listing.Country = input.Country
	}
	if input.Images != nil {
		listing.Images = input.Images
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) DeleteListing(ctx context.Context, sellerID, id string) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if listing.SellerID != sellerID {
		return errors.Forbidden("You can only delete your own listings", nil)
	}

	return uc.listingRepo.Delete(ctx, id)
}

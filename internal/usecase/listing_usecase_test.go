package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tradepost/internal/domain/entity"
	"tradepost/internal/domain/repository"
	"tradepost/pkg/errors"
	"tradepost/pkg/money"
)

func newListingFixture(t *testing.T) (*ListingUseCase, *fakeListingRepo, *fakeUserRepo) {
	t.Helper()

	listingRepo := newFakeListingRepo()
	userRepo := newFakeUserRepo()

	assert.NoError(t, userRepo.Create(context.Background(), &entity.User{ID: "seller-1", FirstName: "Sue", LastName: "Seller"}))

	uc := NewListingUseCase(listingRepo, userRepo)
	return uc, listingRepo, userRepo
}

func validCreateInput(t *testing.T) CreateListingInput {
	t.Helper()

	price, err := money.Parse("25.00")
	assert.NoError(t, err)

	return CreateListingInput{
		Title:       "Vintage camera",
		Description: "Light meter works",
		Price:       price,
		Category:    "product",
		City:        "Portland",
	}
}

func TestCreateListingDefaults(t *testing.T) {
	uc, _, _ := newListingFixture(t)

	listing, err := uc.CreateListing(context.Background(), "seller-1", validCreateInput(t))
	assert.NoError(t, err)
	assert.Equal(t, entity.ListingStatusActive, listing.Status)
	assert.NotNil(t, listing.Images)
	assert.Equal(t, 0, listing.Views)
	assert.Equal(t, "seller-1", listing.SellerID)
}

func TestCreateListingValidation(t *testing.T) {
	uc, _, _ := newListingFixture(t)

	input := validCreateInput(t)
	input.Title = ""
	_, err := uc.CreateListing(context.Background(), "seller-1", input)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	input = validCreateInput(t)
	input.Price = 0
	_, err = uc.CreateListing(context.Background(), "seller-1", input)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	input = validCreateInput(t)
	input.Category = "antiques"
	_, err = uc.CreateListing(context.Background(), "seller-1", input)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateListingUnknownSeller(t *testing.T) {
	uc, _, _ := newListingFixture(t)

	_, err := uc.CreateListing(context.Background(), "ghost", validCreateInput(t))
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestGetListingByIDBumpsViews(t *testing.T) {
	uc, listingRepo, _ := newListingFixture(t)

	created, err := uc.CreateListing(context.Background(), "seller-1", validCreateInput(t))
	assert.NoError(t, err)

	fetched, err := uc.GetListingByID(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, fetched.Views)

	// The durable bump runs off the request path.
	assert.Eventually(t, func() bool {
		return listingRepo.viewCount(created.ID) == 1
	}, time.Second, 10*time.Millisecond)

	_, err = uc.GetListingByID(context.Background(), created.ID)
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		return listingRepo.viewCount(created.ID) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestGetListingByIDNotFound(t *testing.T) {
	uc, _, _ := newListingFixture(t)

	_, err := uc.GetListingByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListListingsDefaultsToActive(t *testing.T) {
	uc, listingRepo, _ := newListingFixture(t)

	active, err := uc.CreateListing(context.Background(), "seller-1", validCreateInput(t))
	assert.NoError(t, err)

	inactive, err := uc.CreateListing(context.Background(), "seller-1", validCreateInput(t))
	assert.NoError(t, err)
	inactive.Status = entity.ListingStatusInactive
	assert.NoError(t, listingRepo.Update(context.Background(), inactive))

	listings, total, err := uc.ListListings(context.Background(), repository.ListingFilter{}, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, active.ID, listings[0].ID)
}

func TestUpdateListingOwnerOnly(t *testing.T) {
	uc, _, _ := newListingFixture(t)

	created, err := uc.CreateListing(context.Background(), "seller-1", validCreateInput(t))
	assert.NoError(t, err)

	_, err = uc.UpdateListing(context.Background(), "stranger", created.ID, UpdateListingInput{Title: "Stolen"})
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestUpdateListingPartial(t *testing.T) {
	uc, _, _ := newListingFixture(t)

	created, err := uc.CreateListing(context.Background(), "seller-1", validCreateInput(t))
	assert.NoError(t, err)

	newPrice, err := money.Parse("30.00")
	assert.NoError(t, err)

	updated, err := uc.UpdateListing(context.Background(), "seller-1", created.ID, UpdateListingInput{
		Price:  newPrice,
		Status: entity.ListingStatusSold,
	})
	assert.NoError(t, err)
	assert.Equal(t, newPrice, updated.Price)
	assert.Equal(t, entity.ListingStatusSold, updated.Status)
	// Unset fields keep their stored values.
	assert.Equal(t, "Vintage camera", updated.Title)
	assert.Equal(t, "Portland", updated.City)
}

func TestUpdateListingRejectsBadValues(t *testing.T) {
	uc, _, _ := newListingFixture(t)

	created, err := uc.CreateListing(context.Background(), "seller-1", validCreateInput(t))
	assert.NoError(t, err)

	_, err = uc.UpdateListing(context.Background(), "seller-1", created.ID, UpdateListingInput{Category: "antiques"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.UpdateListing(context.Background(), "seller-1", created.ID, UpdateListingInput{Status: "archived"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestDeleteListingOwnerOnly(t *testing.T) {
	uc, _, _ := newListingFixture(t)

	created, err := uc.CreateListing(context.Background(), "seller-1", validCreateInput(t))
	assert.NoError(t, err)

	err = uc.DeleteListing(context.Background(), "stranger", created.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	err = uc.DeleteListing(context.Background(), "seller-1", created.ID)
	assert.NoError(t, err)

	_, err = uc.GetListingByID(context.Background(), created.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

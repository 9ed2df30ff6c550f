package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"tradepost/internal/domain/entity"
	"tradepost/pkg/errors"
	"tradepost/pkg/money"
)

func newOrderFixture() (*OrderUseCase, *fakeOrderRepo, *fakeListingRepo, *fakeUserRepo, *fakePaymentGateway) {
	orderRepo := newFakeOrderRepo()
	listingRepo := newFakeListingRepo()
	userRepo := newFakeUserRepo()
	gateway := &fakePaymentGateway{}

	uc := NewOrderUseCase(orderRepo, listingRepo, userRepo, gateway)
	return uc, orderRepo, listingRepo, userRepo, gateway
}

func seedListing(t *testing.T, listingRepo *fakeListingRepo, sellerID, price string) *entity.Listing {
	t.Helper()

	amount, err := money.Parse(price)
	assert.NoError(t, err)

	listing := &entity.Listing{
		SellerID: sellerID,
		Title:    "Vintage camera",
		Price:    amount,
		Category: "product",
		Status:   entity.ListingStatusActive,
	}
	assert.NoError(t, listingRepo.Create(context.Background(), listing))
	return listing
}

func TestCreateOrderSplitsFee(t *testing.T) {
	uc, _, listingRepo, _, _ := newOrderFixture()
	listing := seedListing(t, listingRepo, "seller-1", "100.00")

	order, err := uc.CreateOrder(context.Background(), "buyer-1", CreateOrderInput{
		ListingID: listing.ID,
		Quantity:  2,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(20000), order.TotalAmount.Cents())
	assert.Equal(t, int64(1000), order.PlatformFee.Cents())
	assert.Equal(t, int64(19000), order.SellerAmount.Cents())
	assert.Equal(t, order.TotalAmount, order.PlatformFee+order.SellerAmount)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "seller-1", order.SellerID)
}

func TestCreateOrderFeeSplitIsExactOnOddAmounts(t *testing.T) {
	uc, _, listingRepo, _, _ := newOrderFixture()
	listing := seedListing(t, listingRepo, "seller-1", "0.33")

	order, err := uc.CreateOrder(context.Background(), "buyer-1", CreateOrderInput{
		ListingID: listing.ID,
		Quantity:  1,
	})

	assert.NoError(t, err)
	// 5% of 33 cents is 1.65 cents, rounded half up to 2.
	assert.Equal(t, int64(33), order.TotalAmount.Cents())
	assert.Equal(t, int64(2), order.PlatformFee.Cents())
	assert.Equal(t, int64(31), order.SellerAmount.Cents())
	assert.Equal(t, order.TotalAmount, order.PlatformFee+order.SellerAmount)
}

func TestCreateOrderDefaultsQuantityToOne(t *testing.T) {
	uc, _, listingRepo, _, _ := newOrderFixture()
	listing := seedListing(t, listingRepo, "seller-1", "50.00")

	order, err := uc.CreateOrder(context.Background(), "buyer-1", CreateOrderInput{
		ListingID: listing.ID,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, order.Quantity)
	assert.Equal(t, int64(5000), order.TotalAmount.Cents())
}

func TestCreateOrderRejectsNegativeQuantity(t *testing.T) {
	uc, _, listingRepo, _, _ := newOrderFixture()
	listing := seedListing(t, listingRepo, "seller-1", "50.00")

	_, err := uc.CreateOrder(context.Background(), "buyer-1", CreateOrderInput{
		ListingID: listing.ID,
		Quantity:  -1,
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateOrderUnknownListing(t *testing.T) {
	uc, _, _, _, _ := newOrderFixture()

	_, err := uc.CreateOrder(context.Background(), "buyer-1", CreateOrderInput{
		ListingID: "missing",
	})

	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestInitiatePaymentMarksOrderPaid(t *testing.T) {
	uc, orderRepo, listingRepo, _, gateway := newOrderFixture()
	listing := seedListing(t, listingRepo, "seller-1", "100.00")

	order, err := uc.CreateOrder(context.Background(), "buyer-1", CreateOrderInput{ListingID: listing.ID})
	assert.NoError(t, err)

	result, err := uc.InitiatePayment(context.Background(), "buyer-1", order.ID)
	assert.NoError(t, err)
	assert.Equal(t, "pi_test_123", result.PaymentIntentID)
	assert.Equal(t, "pi_test_123_secret", result.ClientSecret)
	assert.Equal(t, entity.OrderStatusPaid, result.Order.Status)

	stored, err := orderRepo.GetByID(context.Background(), order.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, stored.Status)
	assert.Equal(t, "pi_test_123", stored.StripePaymentIntentID)

	assert.Len(t, gateway.calls, 1)
	assert.Equal(t, int64(10000), gateway.calls[0].AmountCents)
}

func TestInitiatePaymentOnlyBuyer(t *testing.T) {
	uc, _, listingRepo, _, _ := newOrderFixture()
	listing := seedListing(t, listingRepo, "seller-1", "100.00")

	order, err := uc.CreateOrder(context.Background(), "buyer-1", CreateOrderInput{ListingID: listing.ID})
	assert.NoError(t, err)

	_, err = uc.InitiatePayment(context.Background(), "seller-1", order.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestInitiatePaymentGatewayFailureLeavesOrderUntouched(t *testing.T) {
	uc, orderRepo, listingRepo, _, gateway := newOrderFixture()
	gateway.fail = true
	listing := seedListing(t, listingRepo, "seller-1", "100.00")

	order, err := uc.CreateOrder(context.Background(), "buyer-1", CreateOrderInput{ListingID: listing.ID})
	assert.NoError(t, err)

	_, err = uc.InitiatePayment(context.Background(), "buyer-1", order.ID)
	assert.True(t, errors.Is(err, "UPSTREAM_FAILURE"))

	stored, err := orderRepo.GetByID(context.Background(), order.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, stored.Status)
	assert.Empty(t, stored.StripePaymentIntentID)
}

func TestUpdateOrderStatusSellerOnly(t *testing.T) {
	uc, _, listingRepo, _, _ := newOrderFixture()
	listing := seedListing(t, listingRepo, "seller-1", "100.00")

	order, err := uc.CreateOrder(context.Background(), "buyer-1", CreateOrderInput{ListingID: listing.ID})
	assert.NoError(t, err)

	_, err = uc.UpdateOrderStatus(context.Background(), "buyer-1", order.ID, UpdateOrderStatusInput{
		Status: entity.OrderStatusShipped,
	})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	updated, err := uc.UpdateOrderStatus(context.Background(), "seller-1", order.ID, UpdateOrderStatusInput{
		Status:         entity.OrderStatusShipped,
		TrackingNumber: "TRACK-42",
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, updated.Status)
	assert.Equal(t, "TRACK-42", updated.TrackingNumber)
}

func TestUpdateOrderStatusHasNoTransitionGraph(t *testing.T) {
	uc, _, listingRepo, _, _ := newOrderFixture()
	listing := seedListing(t, listingRepo, "seller-1", "100.00")

	order, err := uc.CreateOrder(context.Background(), "buyer-1", CreateOrderInput{ListingID: listing.ID})
	assert.NoError(t, err)

	_, err = uc.UpdateOrderStatus(context.Background(), "seller-1", order.ID, UpdateOrderStatusInput{
		Status: entity.OrderStatusCompleted,
	})
	assert.NoError(t, err)

	// Backwards moves are accepted.
	updated, err := uc.UpdateOrderStatus(context.Background(), "seller-1", order.ID, UpdateOrderStatusInput{
		Status: entity.OrderStatusPending,
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, updated.Status)
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	uc, _, listingRepo, _, _ := newOrderFixture()
	listing := seedListing(t, listingRepo, "seller-1", "100.00")

	order, err := uc.CreateOrder(context.Background(), "buyer-1", CreateOrderInput{ListingID: listing.ID})
	assert.NoError(t, err)

	_, err = uc.UpdateOrderStatus(context.Background(), "seller-1", order.ID, UpdateOrderStatusInput{
		Status: "archived",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdateOrderStatusKeepsTrackingWhenOmitted(t *testing.T) {
	uc, _, listingRepo, _, _ := newOrderFixture()
	listing := seedListing(t, listingRepo, "seller-1", "100.00")

	order, err := uc.CreateOrder(context.Background(), "buyer-1", CreateOrderInput{ListingID: listing.ID})
	assert.NoError(t, err)

	_, err = uc.UpdateOrderStatus(context.Background(), "seller-1", order.ID, UpdateOrderStatusInput{
		Status:         entity.OrderStatusShipped,
		TrackingNumber: "TRACK-42",
	})
	assert.NoError(t, err)

	updated, err := uc.UpdateOrderStatus(context.Background(), "seller-1", order.ID, UpdateOrderStatusInput{
		Status: entity.OrderStatusDelivered,
	})
	assert.NoError(t, err)
	assert.Equal(t, "TRACK-42", updated.TrackingNumber)
}

func TestListOrdersScopes(t *testing.T) {
	uc, _, listingRepo, userRepo, _ := newOrderFixture()

	assert.NoError(t, userRepo.Create(context.Background(), &entity.User{ID: "alice", FirstName: "Alice", LastName: "Ames"}))
	assert.NoError(t, userRepo.Create(context.Background(), &entity.User{ID: "bob", FirstName: "Bob", LastName: "Burke"}))

	sold := seedListing(t, listingRepo, "alice", "10.00")
	bought := seedListing(t, listingRepo, "bob", "20.00")

	_, err := uc.CreateOrder(context.Background(), "bob", CreateOrderInput{ListingID: sold.ID})
	assert.NoError(t, err)
	_, err = uc.CreateOrder(context.Background(), "alice", CreateOrderInput{ListingID: bought.ID})
	assert.NoError(t, err)

	purchases, total, err := uc.ListOrders(context.Background(), "alice", "purchases", 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "alice", purchases[0].BuyerID)

	sales, total, err := uc.ListOrders(context.Background(), "alice", "sales", 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "alice", sales[0].SellerID)

	// Unknown scope falls back to both sides.
	all, total, err := uc.ListOrders(context.Background(), "alice", "everything", 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
	assert.Equal(t, "Alice Ames", all[0].BuyerName)
}

func TestGetOrderByIDRestrictedToParties(t *testing.T) {
	uc, _, listingRepo, _, _ := newOrderFixture()
	listing := seedListing(t, listingRepo, "seller-1", "100.00")

	order, err := uc.CreateOrder(context.Background(), "buyer-1", CreateOrderInput{ListingID: listing.ID})
	assert.NoError(t, err)

	_, err = uc.GetOrderByID(context.Background(), "buyer-1", order.ID)
	assert.NoError(t, err)

	_, err = uc.GetOrderByID(context.Background(), "seller-1", order.ID)
	assert.NoError(t, err)

	_, err = uc.GetOrderByID(context.Background(), "stranger", order.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

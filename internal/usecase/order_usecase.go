package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"tradepost/internal/domain/entity"
	"tradepost/internal/domain/repository"
	"tradepost/internal/domain/service"
	"tradepost/pkg/errors"
	"tradepost/pkg/money"
	"tradepost/pkg/utils"
)

// platformFeeRate is the marketplace's fixed 5% cut of every order total.
// Not configurable per listing or category.
var platformFeeRate = decimal.NewFromFloat(0.05)

type OrderUseCase struct {
	orderRepo      repository.OrderRepository
	listingRepo    repository.ListingRepository
	userRepo       repository.UserRepository
	paymentGateway service.PaymentGatewayService
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	paymentGateway service.PaymentGatewayService,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:      orderRepo,
		listingRepo:    listingRepo,
		userRepo:       userRepo,
		paymentGateway: paymentGateway,
	}
}

type CreateOrderInput struct {
	ListingID       string
	Quantity        int
	ShippingAddress string
	Notes           string
}

func (uc *OrderUseCase) CreateOrder(ctx context.Context, buyerID string, input CreateOrderInput) (*entity.Order, error) {
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < 1 {
		return nil, errors.BadRequest("Quantity must be at least 1", nil)
	}

	listing, err := uc.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}

	totalAmount := listing.Price.MulInt(int64(input.Quantity))
	platformFee := totalAmount.Percent(platformFeeRate)
	sellerAmount := totalAmount - platformFee

	order := &entity.Order{
		ListingID:       listing.ID,
		BuyerID:         buyerID,
		SellerID:        listing.SellerID,
		Quantity:        input.Quantity,
		TotalAmount:     totalAmount,
		PlatformFee:     platformFee,
		SellerAmount:    sellerAmount,
		Status:          entity.OrderStatusPending,
		ShippingAddress: input.ShippingAddress,
		Notes:           input.Notes,
	}

	// Quantity is recorded but listings are not depletable stock; nothing is
	// decremented here.
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

type PaymentResult struct {
	Order           *entity.Order `json:"order"`
	PaymentIntentID string        `json:"payment_intent_id"`
	ClientSecret    string        `json:"client_secret"`
}

// InitiatePayment creates a gateway payment intent for the order total and
// advances the order to paid. There is no confirmation webhook: initiation
// and success are the same event here.
func (uc *OrderUseCase) InitiatePayment(ctx context.Context, buyerID, orderID string) (*PaymentResult, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != buyerID {
		return nil, errors.Forbidden("Only the buyer can pay for this order", nil)
	}

	intent, err := uc.paymentGateway.CreatePaymentIntent(ctx, service.PaymentIntentRequest{
		OrderID:     order.ID,
		BuyerID:     buyerID,
		AmountCents: order.TotalAmount.Cents(),
		Currency:    "usd",
	})
	if err != nil {
		return nil, errors.UpstreamFailure("Failed to initiate payment", err)
	}

	order.StripePaymentIntentID = intent.IntentID
	order.Status = entity.OrderStatusPaid

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return &PaymentResult{
		Order:           order,
		PaymentIntentID: intent.IntentID,
		ClientSecret:    intent.ClientSecret,
	}, nil
}

type UpdateOrderStatusInput struct {
	Status         string
	TrackingNumber string
}

// UpdateOrderStatus overwrites the status with any valid enum value; there
// is no transition graph, so completed back to pending is accepted.
func (uc *OrderUseCase) UpdateOrderStatus(ctx context.Context, callerID, orderID string, input UpdateOrderStatusInput) (*entity.Order, error) {
	if !entity.ValidOrderStatus(input.Status) {
		return nil, errors.BadRequest("Invalid order status", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.SellerID != callerID {
		return nil, errors.Forbidden("Only the seller can update order status", nil)
	}

	order.Status = input.Status
	if input.TrackingNumber != "" {
		order.TrackingNumber = input.TrackingNumber
	}

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// OrderView is an order row joined with listing and party details for
// display.
type OrderView struct {
	*entity.Order
	ListingTitle string       `json:"listing_title,omitempty"`
	ListingPrice money.Amount `json:"listing_price,omitempty"`
	BuyerName    string       `json:"buyer_name,omitempty"`
	SellerName   string       `json:"seller_name,omitempty"`
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, userID, scope string, page, limit int) ([]*OrderView, int64, error) {
	switch scope {
	case repository.OrderScopePurchases, repository.OrderScopeSales:
	default:
		scope = repository.OrderScopeAll
	}

	pagination := utils.NewPaginationParams(page, limit)

	orders, total, err := uc.orderRepo.ListByUser(ctx, userID, scope, pagination.PageSize, pagination.Offset)
	if err != nil {
		return nil, 0, err
	}

	views := make([]*OrderView, len(orders))
	listings := make(map[string]*entity.Listing)
	users := make(map[string]*entity.User)

	for i, order := range orders {
		view := &OrderView{Order: order}

		if listing := uc.lookupListing(ctx, listings, order.ListingID); listing != nil {
			view.ListingTitle = listing.Title
			view.ListingPrice = listing.Price
		}
		if buyer := uc.lookupUser(ctx, users, order.BuyerID); buyer != nil {
			view.BuyerName = buyer.FirstName + " " + buyer.LastName
		}
		if seller := uc.lookupUser(ctx, users, order.SellerID); seller != nil {
			view.SellerName = seller.FirstName + " " + seller.LastName
		}

		views[i] = view
	}

	return views, total, nil
}

func (uc *OrderUseCase) GetOrderByID(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != userID && order.SellerID != userID {
		return nil, errors.Forbidden("You don't have permission to view this order", nil)
	}

	return order, nil
}

func (uc *OrderUseCase) lookupListing(ctx context.Context, cache map[string]*entity.Listing, id string) *entity.Listing {
	if listing, ok := cache[id]; ok {
		return listing
	}
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		listing = nil
	}
	cache[id] = listing
	return listing
}

func (uc *OrderUseCase) lookupUser(ctx context.Context, cache map[string]*entity.User, id string) *entity.User {
	if user, ok := cache[id]; ok {
		return user
	}
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		user = nil
	}
	cache[id] = user
	return user
}

package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"tradepost/internal/domain/entity"
	"tradepost/internal/domain/repository"
	"tradepost/internal/domain/service"
	"tradepost/pkg/errors"
)

// In-memory repository fakes. They reproduce the ID assignment and ordering
// behavior of the Firestore adapters so use case tests exercise the same
// contracts.

type fakeUserRepo struct {
	users   map[string]*entity.User
	failAgg bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateAggregates(ctx context.Context, id string, rating float64, reviewCount int) error {
	if r.failAgg {
		return errors.Internal("aggregate write failed", nil)
	}
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.Rating = rating
	user.ReviewCount = reviewCount
	return nil
}

type fakeListingRepo struct {
	mu       sync.Mutex
	listings map[string]*entity.Listing
	views    map[string]int
	failAgg  bool
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{
		listings: make(map[string]*entity.Listing),
		views:    make(map[string]int),
	}
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = time.Now()
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	copied := *listing
	return &copied, nil
}

func (r *fakeListingRepo) List(ctx context.Context, filter repository.ListingFilter, limit, offset int) ([]*entity.Listing, int64, error) {
	var out []*entity.Listing
	for _, listing := range r.listings {
		if filter.Status != "" && listing.Status != filter.Status {
			continue
		}
		if filter.Category != "" && listing.Category != filter.Category {
			continue
		}
		out = append(out, listing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return paginate(out, limit, offset)
}

func (r *fakeListingRepo) ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Listing, int64, error) {
	var out []*entity.Listing
	for _, listing := range r.listings {
		if listing.SellerID == sellerID {
			out = append(out, listing)
		}
	}
	return paginate(out, limit, offset)
}

func (r *fakeListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	if _, ok := r.listings[listing.ID]; !ok {
		return errors.NotFound("Listing", nil)
	}
	listing.UpdatedAt = time.Now()
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.listings[id]; !ok {
		return errors.NotFound("Listing", nil)
	}
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing, ok := r.listings[id]
	if !ok {
		return errors.NotFound("Listing", nil)
	}
	listing.Views++
	r.views[id]++
	return nil
}

func (r *fakeListingRepo) viewCount(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.views[id]
}

func (r *fakeListingRepo) UpdateAggregates(ctx context.Context, id string, rating float64, reviewCount int) error {
	if r.failAgg {
		return errors.Internal("aggregate write failed", nil)
	}
	listing, ok := r.listings[id]
	if !ok {
		return errors.NotFound("Listing", nil)
	}
	listing.Rating = rating
	listing.ReviewCount = reviewCount
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	r.seq++
	order.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	order.UpdatedAt = order.CreatedAt
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return errors.NotFound("Order", nil)
	}
	order.UpdatedAt = time.Now()
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID, scope string, limit, offset int) ([]*entity.Order, int64, error) {
	var out []*entity.Order
	for _, order := range r.orders {
		switch scope {
		case repository.OrderScopePurchases:
			if order.BuyerID != userID {
				continue
			}
		case repository.OrderScopeSales:
			if order.SellerID != userID {
				continue
			}
		default:
			if order.BuyerID != userID && order.SellerID != userID {
				continue
			}
		}
		out = append(out, order)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return paginate(out, limit, offset)
}

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{}
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	for _, review := range r.reviews {
		if review.ID == id {
			return review, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *fakeReviewRepo) GetByOrderAndReviewer(ctx context.Context, listingID, reviewerID, orderID string) (*entity.Review, error) {
	for _, review := range r.reviews {
		if review.ListingID == listingID && review.ReviewerID == reviewerID && review.OrderID == orderID {
			return review, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *fakeReviewRepo) ListByListingID(ctx context.Context, listingID string, limit, offset int) ([]*entity.Review, int64, error) {
	var out []*entity.Review
	for _, review := range r.reviews {
		if review.ListingID == listingID {
			out = append(out, review)
		}
	}
	return paginate(out, limit, offset)
}

func (r *fakeReviewRepo) ListByRevieweeID(ctx context.Context, revieweeID string) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, review := range r.reviews {
		if review.RevieweeID == revieweeID {
			out = append(out, review)
		}
	}
	return out, nil
}

type fakeMessageRepo struct {
	messages []*entity.Message
	seq      int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	r.seq++
	message.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	message.UpdatedAt = message.CreatedAt
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) ListBetween(ctx context.Context, userID, otherUserID string) ([]*entity.Message, error) {
	var out []*entity.Message
	for _, message := range r.messages {
		between := (message.SenderID == userID && message.ReceiverID == otherUserID) ||
			(message.SenderID == otherUserID && message.ReceiverID == userID)
		if between {
			copied := *message
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeMessageRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Message, error) {
	var out []*entity.Message
	for _, message := range r.messages {
		if message.SenderID == userID || message.ReceiverID == userID {
			copied := *message
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeMessageRepo) MarkRead(ctx context.Context, id string) error {
	for _, message := range r.messages {
		if message.ID == id {
			message.IsRead = true
			return nil
		}
	}
	return errors.NotFound("Message", nil)
}

type fakePaymentGateway struct {
	fail  bool
	calls []service.PaymentIntentRequest
}

func (g *fakePaymentGateway) CreatePaymentIntent(ctx context.Context, req service.PaymentIntentRequest) (*service.PaymentIntentResponse, error) {
	g.calls = append(g.calls, req)
	if g.fail {
		return nil, errors.Internal("gateway unavailable", nil)
	}
	return &service.PaymentIntentResponse{
		IntentID:     "pi_test_123",
		ClientSecret: "pi_test_123_secret",
		Status:       "requires_payment_method",
	}, nil
}

func paginate[T any](items []*T, limit, offset int) ([]*T, int64, error) {
	total := int64(len(items))
	if offset >= len(items) {
		return []*T{}, total, nil
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end], total, nil
}

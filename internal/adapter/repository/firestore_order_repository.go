package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tradepost/internal/domain/entity"
	"tradepost/internal/domain/repository"
	"tradepost/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	order.UpdatedAt = time.Now()

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to update order", err)
	}

	return nil
}

// ListByUser merges the buyer and seller queries for the "all" scope since
// Firestore cannot express the OR in one query. Results are newest first.
func (r *firestoreOrderRepository) ListByUser(ctx context.Context, userID, scope string, limit, offset int) ([]*entity.Order, int64, error) {
	var fields []string
	switch scope {
	case repository.OrderScopePurchases:
		fields = []string{"buyerId"}
	case repository.OrderScopeSales:
		fields = []string{"sellerId"}
	case repository.OrderScopeAll:
		fields = []string{"buyerId", "sellerId"}
	default:
		return nil, 0, errors.BadRequest("Invalid order scope", nil)
	}

	seen := make(map[string]bool)
	var orders []*entity.Order

	for _, field := range fields {
		query := r.client.Collection("orders").Where(field, "==", userID)

		docs, err := query.Documents(ctx).GetAll()
		if err != nil {
			return nil, 0, errors.Internal("Failed to query orders", err)
		}

		for _, doc := range docs {
			if seen[doc.Ref.ID] {
				continue
			}
			seen[doc.Ref.ID] = true

			var order entity.Order
			if err := doc.DataTo(&order); err != nil {
				return nil, 0, errors.Internal("Failed to parse order data", err)
			}
			orders = append(orders, &order)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	total := int64(len(orders))

	if offset >= len(orders) {
		return nil, total, nil
	}
	orders = orders[offset:]
	if limit > 0 && limit < len(orders) {
		orders = orders[:limit]
	}

	return orders, total, nil
}

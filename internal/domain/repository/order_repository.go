package repository

import (
	"context"

	"tradepost/internal/domain/entity"
)

const (
	OrderScopePurchases = "purchases"
	OrderScopeSales     = "sales"
	OrderScopeAll       = "all"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	// ListByUser returns orders where the user is buyer (purchases), seller
	// (sales) or either (all), newest first.
	ListByUser(ctx context.Context, userID, scope string, limit, offset int) ([]*entity.Order, int64, error)
}

package repository

import (
	"context"

	"tradepost/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	// ListBetween returns every message exchanged by the two users, oldest
	// first.
	ListBetween(ctx context.Context, userID, otherUserID string) ([]*entity.Message, error)
	// ListByUser returns every message the user sent or received, newest
	// first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Message, error)
	MarkRead(ctx context.Context, id string) error
}

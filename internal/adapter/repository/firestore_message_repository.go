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

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	now := time.Now()
	message.CreatedAt = now
	message.UpdatedAt = now

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

// ListBetween runs both directions of the pair as separate queries and
// merges them oldest first; Firestore cannot OR the sender/receiver columns.
func (r *firestoreMessageRepository) ListBetween(ctx context.Context, userID, otherUserID string) ([]*entity.Message, error) {
	pairs := [][2]string{
		{userID, otherUserID},
		{otherUserID, userID},
	}

	var messages []*entity.Message
	for _, pair := range pairs {
		query := r.client.Collection("messages").
			Where("senderId", "==", pair[0]).
			Where("receiverId", "==", pair[1])

		docs, err := query.Documents(ctx).GetAll()
		if err != nil {
			return nil, errors.Internal("Failed to query messages", err)
		}

		for _, doc := range docs {
			var message entity.Message
			if err := doc.DataTo(&message); err != nil {
				return nil, errors.Internal("Failed to parse message data", err)
			}
			messages = append(messages, &message)
		}
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	return messages, nil
}

func (r *firestoreMessageRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Message, error) {
	seen := make(map[string]bool)
	var messages []*entity.Message

	for _, field := range []string{"senderId", "receiverId"} {
		query := r.client.Collection("messages").Where(field, "==", userID)

		docs, err := query.Documents(ctx).GetAll()
		if err != nil {
			return nil, errors.Internal("Failed to query messages", err)
		}

		for _, doc := range docs {
			if seen[doc.Ref.ID] {
				continue
			}
			seen[doc.Ref.ID] = true

			var message entity.Message
			if err := doc.DataTo(&message); err != nil {
				return nil, errors.Internal("Failed to parse message data", err)
			}
			messages = append(messages, &message)
		}
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})

	return messages, nil
}

func (r *firestoreMessageRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Collection("messages").Doc(id).Update(ctx, []firestore.Update{
		{Path: "isRead", Value: true},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Message", err)
		}
		return errors.Internal("Failed to mark message as read", err)
	}

	return nil
}

package usecase

import (
	"context"

	"tradepost/internal/domain/entity"
	"tradepost/internal/domain/repository"
	"tradepost/internal/infrastructure/ws"
	"tradepost/pkg/errors"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	wsManager   *ws.Manager
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	wsManager *ws.Manager,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		wsManager:   wsManager,
	}
}

type SendMessageInput struct {
	ReceiverID string
	Content    string
	ListingID  string
	OrderID    string
}

func (uc *MessageUseCase) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*entity.Message, error) {
	if input.ReceiverID == "" || input.Content == "" {
		return nil, errors.BadRequest("Missing required fields", nil)
	}

	message := &entity.Message{
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
		ListingID:  input.ListingID,
		OrderID:    input.OrderID,
		IsRead:     false,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	if uc.wsManager != nil {
		uc.wsManager.NotifyUser(input.ReceiverID, ws.Event{
			Type: "message",
			Data: message,
		})
	}

	return message, nil
}

// GetConversation returns the full thread between the caller and the other
// user, oldest first, and flips every unread message addressed to the caller
// to read. Calling it again is a no-op on read state.
func (uc *MessageUseCase) GetConversation(ctx context.Context, userID, otherUserID string) ([]*entity.Message, error) {
	messages, err := uc.messageRepo.ListBetween(ctx, userID, otherUserID)
	if err != nil {
		return nil, err
	}

	for _, message := range messages {
		if message.ReceiverID != userID || message.IsRead {
			continue
		}
		if err := uc.messageRepo.MarkRead(ctx, message.ID); err != nil {
			return nil, err
		}
		message.IsRead = true
	}

	return messages, nil
}

// Conversation is the newest message exchanged with one counterpart.
type Conversation struct {
	OtherUserID string          `json:"other_user_id"`
	LastMessage *entity.Message `json:"last_message"`
}

// ListConversations groups the user's messages by counterpart, keeping only
// the first (newest) message seen per counterpart. Order follows the
// underlying newest-first scan.
func (uc *MessageUseCase) ListConversations(ctx context.Context, userID string) ([]*Conversation, error) {
	messages, err := uc.messageRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var conversations []*Conversation

	for _, message := range messages {
		otherUserID := message.SenderID
		if otherUserID == userID {
			otherUserID = message.ReceiverID
		}

		if seen[otherUserID] {
			continue
		}
		seen[otherUserID] = true

		conversations = append(conversations, &Conversation{
			OtherUserID: otherUserID,
			LastMessage: message,
		})
	}

	return conversations, nil
}

package handler

import (
	"github.com/labstack/echo/v4"

	"tradepost/internal/usecase"
	"tradepost/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content" validate:"required"`
	ListingID  string `json:"listing_id"`
	OrderID    string `json:"order_id"`
}

func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	senderID := c.Get("uid").(string)

	message, err := h.messageUseCase.SendMessage(c.Request().Context(), senderID, usecase.SendMessageInput{
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		ListingID:  req.ListingID,
		OrderID:    req.OrderID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

// GetConversation returns the full thread with the other user, oldest first.
// Fetching it marks every unread message addressed to the caller as read.
func (h *MessageHandler) GetConversation(c echo.Context) error {
	userID := c.Get("uid").(string)
	otherUserID := c.Param("userId")

	messages, err := h.messageUseCase.GetConversation(c.Request().Context(), userID, otherUserID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *MessageHandler) ListConversations(c echo.Context) error {
	userID := c.Get("uid").(string)

	conversations, err := h.messageUseCase.ListConversations(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversations)
}

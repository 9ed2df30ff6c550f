package entity

import "time"

// Message is append-only except for IsRead, which flips false to true once
// when the receiver fetches the conversation.
type Message struct {
	ID         string `json:"id" firestore:"id"`
	SenderID   string `json:"sender_id" firestore:"senderId"`
	ReceiverID string `json:"receiver_id" firestore:"receiverId"`
	Content    string `json:"content" firestore:"content"`
	ListingID  string `json:"listing_id,omitempty" firestore:"listingId,omitempty"`
	OrderID    string `json:"order_id,omitempty" firestore:"orderId,omitempty"`
	IsRead     bool   `json:"is_read" firestore:"isRead"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

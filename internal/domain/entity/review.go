package entity

import (
	"time"
)

// Review is written once per completed transaction and never updated or
// deleted. At most one review exists per (listingId, reviewerId, orderId).
type Review struct {
	ID         string   `json:"id" firestore:"id"`
	ListingID  string   `json:"listing_id" firestore:"listingId"`
	OrderID    string   `json:"order_id" firestore:"orderId"`
	ReviewerID string   `json:"reviewer_id" firestore:"reviewerId"`
	RevieweeID string   `json:"reviewee_id" firestore:"revieweeId"`
	Rating     int      `json:"rating" firestore:"rating"`
	Comment    string   `json:"comment" firestore:"comment"`
	Aspects    []string `json:"aspects" firestore:"aspects"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

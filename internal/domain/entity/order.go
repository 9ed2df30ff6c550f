package entity

import (
	"time"

	"tradepost/pkg/money"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
	OrderStatusRefunded  = "refunded"
)

// ValidOrderStatus accepts any of the seven lifecycle values. There is no
// transition graph: an authorized seller write may move status in any
// direction, completed back to pending included.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled,
		OrderStatusRefunded:
		return true
	}
	return false
}

type Order struct {
	ID        string `json:"id" firestore:"id"`
	ListingID string `json:"listing_id" firestore:"listingId"`
	BuyerID   string `json:"buyer_id" firestore:"buyerId"`
	// SellerID is copied from the listing at creation; a later change of the
	// listing's owner does not touch existing orders.
	SellerID string `json:"seller_id" firestore:"sellerId"`
	Quantity int    `json:"quantity" firestore:"quantity"`

	// TotalAmount = listing price x quantity, PlatformFee = 5% of the total,
	// SellerAmount the remainder. All three are integer cents, so
	// SellerAmount + PlatformFee == TotalAmount holds exactly.
	TotalAmount  money.Amount `json:"total_amount" firestore:"totalAmount"`
	PlatformFee  money.Amount `json:"platform_fee" firestore:"platformFee"`
	SellerAmount money.Amount `json:"seller_amount" firestore:"sellerAmount"`

	Status                string `json:"status" firestore:"status"`
	StripePaymentIntentID string `json:"stripe_payment_intent_id,omitempty" firestore:"stripePaymentIntentId,omitempty"`
	TrackingNumber        string `json:"tracking_number,omitempty" firestore:"trackingNumber,omitempty"`
	Notes                 string `json:"notes,omitempty" firestore:"notes,omitempty"`
	ShippingAddress       string `json:"shipping_address,omitempty" firestore:"shippingAddress,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

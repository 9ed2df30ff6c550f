package entity

import (
	"time"

	"tradepost/pkg/money"
)

const (
	ListingStatusActive   = "active"
	ListingStatusInactive = "inactive"
	ListingStatusSold     = "sold"
)

var ListingCategories = []string{"product", "service", "rental", "digital"}

func ValidListingCategory(category string) bool {
	for _, c := range ListingCategories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidListingStatus(status string) bool {
	return status == ListingStatusActive || status == ListingStatusInactive || status == ListingStatusSold
}

type Listing struct {
	ID          string       `json:"id" firestore:"id"`
	SellerID    string       `json:"seller_id" firestore:"sellerId"`
	Title       string       `json:"title" firestore:"title"`
	Description string       `json:"description" firestore:"description"`
	Price       money.Amount `json:"price" firestore:"price"`
	Category    string       `json:"category" firestore:"category"`
	Status      string       `json:"status" firestore:"status"`
	Images      []string     `json:"images" firestore:"images"`

	Location string `json:"location,omitempty" firestore:"location,omitempty"`
	City     string `json:"city,omitempty" firestore:"city,omitempty"`
	State    string `json:"state,omitempty" firestore:"state,omitempty"`
	Country  string `json:"country,omitempty" firestore:"country,omitempty"`

	// Same invariant as User.Rating/ReviewCount, scoped to reviews of this
	// listing. Views only ever grows; every detail fetch bumps it.
	Rating      float64 `json:"rating" firestore:"rating"`
	ReviewCount int     `json:"review_count" firestore:"reviewCount"`
	Views       int     `json:"views" firestore:"views"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

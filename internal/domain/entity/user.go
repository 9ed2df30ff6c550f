package entity

import (
	"time"
)

const (
	UserTypeBuyer  = "buyer"
	UserTypeSeller = "seller"
	UserTypeBoth   = "both"
)

type User struct {
	ID        string `json:"id" firestore:"id"`
	Email     string `json:"email" firestore:"email"`
	FirstName string `json:"first_name" firestore:"firstName"`
	LastName  string `json:"last_name" firestore:"lastName"`
	Phone     string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Avatar    string `json:"avatar,omitempty" firestore:"avatar,omitempty"`
	Bio       string `json:"bio,omitempty" firestore:"bio,omitempty"`
	UserType  string `json:"user_type" firestore:"userType"`
	IsActive  bool   `json:"is_active" firestore:"isActive"`

	City    string `json:"city,omitempty" firestore:"city,omitempty"`
	State   string `json:"state,omitempty" firestore:"state,omitempty"`
	Country string `json:"country,omitempty" firestore:"country,omitempty"`
	ZipCode string `json:"zip_code,omitempty" firestore:"zipCode,omitempty"`

	// Aggregate review state. Written only by the review aggregator: Rating
	// is the arithmetic mean of all reviews naming this user as reviewee,
	// ReviewCount the number of those reviews.
	Rating      float64 `json:"rating" firestore:"rating"`
	ReviewCount int     `json:"review_count" firestore:"reviewCount"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// PublicProfile strips contact fields for the public user endpoint.
type PublicProfile struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Avatar      string    `json:"avatar,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *User) Public() *PublicProfile {
	return &PublicProfile{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Avatar:      u.Avatar,
		Bio:         u.Bio,
		City:        u.City,
		Country:     u.Country,
		Rating:      u.Rating,
		ReviewCount: u.ReviewCount,
		CreatedAt:   u.CreatedAt,
	}
}
